package game

import "eggbreak/internal/models"

type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "WIN"
	}
	return "LOSE"
}

// EffectiveWinRate picks the rate that applies to one egg under the given
// config: the global override (single rate or group A/B) when enabled,
// otherwise the egg's own rate. An egg in neither group keeps its own rate.
func EffectiveWinRate(egg models.Egg, cfg models.GlobalWinRateConfig) int {
	if !cfg.Enabled {
		return egg.WinningRate
	}
	if !cfg.UseGroups {
		return cfg.GlobalWinRate
	}
	if containsID(cfg.Groups.GroupA.EggIDs, egg.ID) {
		return cfg.Groups.GroupA.WinRate
	}
	if containsID(cfg.Groups.GroupB.EggIDs, egg.ID) {
		return cfg.Groups.GroupB.WinRate
	}
	return egg.WinningRate
}

// Resolve decides the outcome of one break attempt. draw is a uniform
// value in [0,100), consumed exactly once per attempt; it is ignored in
// deterministic mode (master switch off), where the configured reward is
// always paid. Losing always pays the number 0, never a zero label.
func Resolve(egg models.Egg, cfg models.GlobalWinRateConfig, draw float64) (Outcome, models.Reward) {
	if !cfg.WinRateSystemEnabled {
		return Win, egg.Reward
	}
	if draw <= float64(EffectiveWinRate(egg, cfg)) {
		return Win, egg.Reward
	}
	return Lose, models.NumericReward(0)
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
