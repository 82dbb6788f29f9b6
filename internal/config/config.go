// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TileSize     = 22.0 // пикселей на тайл при отрисовке
	FieldOffsetX = 120.0
	FieldOffsetY = 90.0

	// Максимальная дельта одного тика в миллисекундах. Защита от скачка
	// симуляции после подвисания хоста.
	MaxDeltaMs = 60.0

	// Длительность боя по умолчанию, секунды.
	BattleDuration = 180.0

	// Пороги звёзд: звезда за 50% разрушения, звезда за ратушу,
	// звезда за 100%.
	StarDestructionThreshold = 50.0

	// Дефолты пер-видовых полей. Применяются, когда поле войска не задано
	// (нулевое значение).
	DefaultWallDamageMultiplier     = 40.0
	DefaultResourceDamageMultiplier = 2.0
	DefaultHealRadius               = 5.0
	DefaultChainTargets             = 4
	DefaultChainDamageDecay         = 0.75
	DefaultSplashRadius             = 1.0

	// Радиусы спец-механик, тайлы.
	BabyDragonEnrageRadius = 4.5
	ElectroChainRadius     = 4.0

	// Множители спец-механик.
	BabyDragonEnrageMultiplier = 2.0
	HeroHealFactor             = 0.5
	DeathSpawnHPFactor         = 0.2
	DeathSpawnDPSFactor        = 0.3
	DeathSpawnOffsetRange      = 1.0 // смещение спавна по каждой оси, [-1;1]
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{54, 84, 48, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TroopColor      = color.RGBA{50, 100, 255, 255}
	FlyingColor     = color.RGBA{120, 180, 255, 255}
	HeroColor       = color.RGBA{255, 215, 0, 255}
	BuildingColor   = color.RGBA{150, 150, 160, 255}
	DefenseColor    = color.RGBA{200, 70, 70, 255}
	WallColor       = color.RGBA{128, 128, 128, 255}
	ResourceColor   = color.RGBA{255, 215, 0, 255}
	DestroyedColor  = color.RGBA{60, 50, 50, 255}
	HealSpellColor  = color.RGBA{255, 230, 100, 120}
	PoisonColor     = color.RGBA{120, 220, 80, 120}
	StarColor       = color.RGBA{255, 215, 0, 255}
)
