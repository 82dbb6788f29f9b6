// internal/system/utils.go
package system

import (
	"go-village-battle/internal/component"
)

// ApplyBuildingDamage наносит урон зданию, зажимая hp на нуле. При смертельном
// уроне здание помечается разрушенным, а парная оборона синхронизируется.
func ApplyBuildingDamage(b *component.BattleBuilding, defenses []*component.ActiveDefense, damage float64) {
	if b == nil || b.IsDestroyed || damage <= 0 {
		return
	}

	b.CurrentHP -= damage
	if b.CurrentHP <= 0 {
		b.CurrentHP = 0
		b.IsDestroyed = true
		SyncPairedDefense(defenses, b.InstanceID)
	}
}

// SyncPairedDefense принудительно гасит оборону, привязанную к зданию.
// Висячая ссылка (оборона не найдена) — это no-op, а не ошибка.
func SyncPairedDefense(defenses []*component.ActiveDefense, buildingInstanceID string) {
	for _, d := range defenses {
		if d.BuildingInstanceID == buildingInstanceID {
			d.HP = 0
			d.IsDestroyed = true
			return
		}
	}
}

// ApplyTroopDamage наносит урон войску, зажимая hp на нуле. Переход в
// состояние dead и эффекты смерти выполняет драйвер тика, ровно один раз.
func ApplyTroopDamage(t *component.DeployedTroop, damage float64) {
	if t == nil || t.State == component.TroopStateDead || damage <= 0 {
		return
	}

	t.CurrentHP -= damage
	if t.CurrentHP < 0 {
		t.CurrentHP = 0
	}
}

// HealTroop лечит войско, не превышая максимум здоровья.
func HealTroop(t *component.DeployedTroop, amount float64) {
	if t == nil || !t.Alive() || amount <= 0 {
		return
	}

	t.CurrentHP += amount
	if t.CurrentHP > t.MaxHP {
		t.CurrentHP = t.MaxHP
	}
}

// orDefault подставляет дефолт вместо незаданного (нулевого) поля.
func orDefault(value, def float64) float64 {
	if value == 0 {
		return def
	}
	return value
}

func orDefaultInt(value, def int) int {
	if value == 0 {
		return def
	}
	return value
}
