// recoil/params.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package recoil

import (
	"github.com/r5v/weaponlab/kv"
)

// Params holds the weapon properties the simulator reads. The zero value
// is not meaningful; use DefaultParams or ReadParams.
type Params struct {
	ClipSize float64
	FireRate float64 // rounds per second; <= 0 means 10

	PitchBase      float64
	PitchRandom    float64
	PitchSoftScale float64
	PitchHardScale float64

	YawBase         float64
	YawRandom       float64
	YawInnerExclude float64
	YawSoftScale    float64
	YawHardScale    float64

	HipfireFraction float64
	ADSFraction     float64
	AirScaleADS     float64

	FirstShotHipfire float64
	FirstShotADS     float64
	MinHipfire       float64
	MaxHipfire       float64
	MinADS           float64
	MaxADS           float64

	ValuePerShot   float64
	PitchLerpStart float64
	PitchLerpEnd   float64
	YawLerpStart   float64
	YawLerpEnd     float64
	DecayDelay     float64
	DecayRate      float64
}

type paramField struct {
	key   string
	def   float64
	field func(*Params) *float64
}

var paramFields = []paramField{
	{"ammo_clip_size", 30, func(p *Params) *float64 { return &p.ClipSize }},
	{"fire_rate", 0, func(p *Params) *float64 { return &p.FireRate }},
	{"viewkick_pitch_base", 1, func(p *Params) *float64 { return &p.PitchBase }},
	{"viewkick_pitch_random", 1, func(p *Params) *float64 { return &p.PitchRandom }},
	{"viewkick_pitch_softScale", 0, func(p *Params) *float64 { return &p.PitchSoftScale }},
	{"viewkick_pitch_hardScale", 0, func(p *Params) *float64 { return &p.PitchHardScale }},
	{"viewkick_yaw_base", 1, func(p *Params) *float64 { return &p.YawBase }},
	{"viewkick_yaw_random", 1, func(p *Params) *float64 { return &p.YawRandom }},
	{"viewkick_yaw_random_innerexclude", 0, func(p *Params) *float64 { return &p.YawInnerExclude }},
	{"viewkick_yaw_softScale", 0, func(p *Params) *float64 { return &p.YawSoftScale }},
	{"viewkick_yaw_hardScale", 0, func(p *Params) *float64 { return &p.YawHardScale }},
	{"viewkick_hipfire_weaponFraction", 1, func(p *Params) *float64 { return &p.HipfireFraction }},
	{"viewkick_ads_weaponFraction", 0, func(p *Params) *float64 { return &p.ADSFraction }},
	{"viewkick_air_scale_ads", 1, func(p *Params) *float64 { return &p.AirScaleADS }},
	{"viewkick_scale_firstshot_hipfire", 1, func(p *Params) *float64 { return &p.FirstShotHipfire }},
	{"viewkick_scale_firstshot_ads", 1, func(p *Params) *float64 { return &p.FirstShotADS }},
	{"viewkick_scale_min_hipfire", 1, func(p *Params) *float64 { return &p.MinHipfire }},
	{"viewkick_scale_max_hipfire", 1, func(p *Params) *float64 { return &p.MaxHipfire }},
	{"viewkick_scale_min_ads", 1, func(p *Params) *float64 { return &p.MinADS }},
	{"viewkick_scale_max_ads", 1, func(p *Params) *float64 { return &p.MaxADS }},
	{"viewkick_scale_valuePerShot", 0, func(p *Params) *float64 { return &p.ValuePerShot }},
	{"viewkick_scale_pitch_valueLerpStart", 0, func(p *Params) *float64 { return &p.PitchLerpStart }},
	{"viewkick_scale_pitch_valueLerpEnd", 0, func(p *Params) *float64 { return &p.PitchLerpEnd }},
	{"viewkick_scale_yaw_valueLerpStart", 0, func(p *Params) *float64 { return &p.YawLerpStart }},
	{"viewkick_scale_yaw_valueLerpEnd", 0, func(p *Params) *float64 { return &p.YawLerpEnd }},
	{"viewkick_scale_valueDecayDelay", 0, func(p *Params) *float64 { return &p.DecayDelay }},
	{"viewkick_scale_valueDecayRate", 0, func(p *Params) *float64 { return &p.DecayRate }},
}

// PatternKey is the property naming the weapon's recoil pattern.
const PatternKey = "viewkick_pattern"

// ParamKeys returns the names of the numeric properties the simulator
// reads.
func ParamKeys() []string {
	keys := make([]string, len(paramFields))
	for i, f := range paramFields {
		keys[i] = f.key
	}
	return keys
}

func DefaultParams() Params {
	var p Params
	for _, f := range paramFields {
		*f.field(&p) = f.def
	}
	return p
}

// ReadParams reads the simulator inputs from doc. Missing keys and keys
// whose values are not numbers get their defaults.
func ReadParams(doc *kv.Document) Params {
	var p Params
	for _, f := range paramFields {
		*f.field(&p) = doc.Float(f.key, f.def)
	}
	return p
}
