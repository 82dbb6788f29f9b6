// internal/component/spell.go
package component

// ActiveSpell — заклинание с длительностью (лечение, яд), живущее на поле
// несколько секунд. Мгновенные заклинания (молния, землетрясение) никогда
// не создают ActiveSpell.
type ActiveSpell struct {
	ID     string
	Name   string
	Level  int
	X, Y   float64
	Radius float64

	// Длительности в секундах. Заклинание удаляется, как только
	// RemainingDuration опускается до нуля или ниже.
	RemainingDuration float64
	TotalDuration     float64
}
