package component

// Particle — декоративная частица салюта. Живёт Duration секунд и
// удаляется системой, когда Age доходит до Duration.
type Particle struct {
	OriginX, OriginY float64
	Age              float64
	Duration         float64
}
