// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — направление (единичный вектор) и путь, который частица
// проходит за всё время жизни
type Velocity struct {
	DirX, DirY float64
	Distance   float64
}
