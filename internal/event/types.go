// internal/event/types.go
package event

const (
	TroopDeployed     EventType = "TroopDeployed"     // Войско высажено
	TroopDied         EventType = "TroopDied"         // Войско погибло
	BuildingDestroyed EventType = "BuildingDestroyed" // Здание разрушено
	SpellDeployed     EventType = "SpellDeployed"     // Заклинание применено
	SpellExpired      EventType = "SpellExpired"      // Заклинание истекло
	StarAwarded       EventType = "StarAwarded"       // Получена звезда
	BattleEnded       EventType = "BattleEnded"       // Бой завершён
)
