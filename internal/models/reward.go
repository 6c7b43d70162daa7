package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// Reward is either a numeric payout or an opaque prize label ("iPhone").
// Only numeric rewards accumulate into the session total.
type Reward struct {
	amount  float64
	label   string
	isLabel bool
}

func NumericReward(amount float64) Reward {
	return Reward{amount: amount}
}

func LabelReward(label string) Reward {
	return Reward{label: label, isLabel: true}
}

// Amount reports the numeric payout. ok is false for label rewards.
func (r Reward) Amount() (float64, bool) {
	if r.isLabel {
		return 0, false
	}
	return r.amount, true
}

func (r Reward) Label() (string, bool) {
	if !r.isLabel {
		return "", false
	}
	return r.label, true
}

func (r Reward) IsLabel() bool {
	return r.isLabel
}

func (r Reward) String() string {
	if r.isLabel {
		return r.label
	}
	return strconv.FormatFloat(r.amount, 'f', -1, 64)
}

func (r Reward) MarshalJSON() ([]byte, error) {
	if r.isLabel {
		return json.Marshal(r.label)
	}
	return json.Marshal(r.amount)
}

func (r *Reward) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*r = NumericReward(num)
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*r = LabelReward(label)
		return nil
	}
	return errors.New("reward must be a number or a string")
}
