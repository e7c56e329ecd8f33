// recoil/simulate.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package recoil

import (
	"fmt"
	"math"
	"strconv"

	"github.com/r5v/weaponlab/kv"
	"github.com/r5v/weaponlab/rand"
	"github.com/r5v/weaponlab/util"
)

type ViewMode string

const (
	Hipfire ViewMode = "hipfire"
	ADS     ViewMode = "ads"
)

// ParseViewMode accepts "hipfire" and "ads"; the empty string is hipfire.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", Hipfire:
		return Hipfire, nil
	case ADS:
		return ADS, nil
	default:
		return "", fmt.Errorf("%q: unknown view mode; expected %q or %q", s, Hipfire, ADS)
	}
}

// canonical maps anything other than ADS to Hipfire.
func (m ViewMode) canonical() ViewMode {
	if m == ADS {
		return ADS
	}
	return Hipfire
}

const (
	MaxShots    = 60
	MaxVariants = 10

	defaultClipSize = 30
	defaultShotTime = 0.1 // seconds, when fire_rate is unset

	// Dampening applied to the random part of each shot.
	primaryYawDamp   = 0.85
	primaryPitchDamp = 0.85
	variantYawDamp   = 0.55
	variantPitchDamp = 0.7
)

type Point struct {
	X, Y float64
}

type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (e *Extent) extend(p Point) {
	e.MinX, e.MaxX = min(e.MinX, p.X), max(e.MaxX, p.X)
	e.MinY, e.MaxY = min(e.MinY, p.Y), max(e.MaxY, p.Y)
}

// Trajectory is the accumulated crosshair offset after each shot: X is
// yaw and Y is negated pitch, so upward kick has negative Y. Bounds is
// only computed for the primary trajectory and is nil if there are no
// points.
type Trajectory struct {
	Points []Point
	Bounds *Extent
}

// Result is empty when the pattern is unknown.
type Result struct {
	Primary  Trajectory
	Variants []Trajectory
}

func (r Result) Empty() bool {
	return len(r.Primary.Points) == 0
}

// ClampVariants limits a requested trajectory count to [1,MaxVariants].
// The count includes the primary trajectory.
func ClampVariants(n int) int {
	return util.Clamp(n, 1, MaxVariants)
}

// Simulate runs the simulator with the built-in pattern table.
func Simulate(doc *kv.Document, pattern string, mode ViewMode, airborne bool, variants int) Result {
	return DefaultLibrary().Simulate(doc, pattern, mode, airborne, variants)
}

func (l *Library) Simulate(doc *kv.Document, pattern string, mode ViewMode, airborne bool, variants int) Result {
	return l.SimulateParams(ReadParams(doc), pattern, mode, airborne, variants)
}

// SimulateParams returns the primary trajectory for the named pattern
// along with variants-1 alternative trajectories that use different
// random draws. The primary trajectory does not depend on variants.
func (l *Library) SimulateParams(p Params, pattern string, mode ViewMode, airborne bool, variants int) Result {
	pat, ok := l.Lookup(pattern)
	if !ok || len(pat.Bullets) == 0 {
		return Result{}
	}

	s := makeSimulation(p, pat, mode.canonical(), airborne)

	res := Result{Primary: s.run(0, primaryYawDamp, primaryPitchDamp)}
	if len(res.Primary.Points) > 0 {
		ext := Extent{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
		for _, pt := range res.Primary.Points {
			ext.extend(pt)
		}
		res.Primary.Bounds = &ext
	}

	n := ClampVariants(variants)
	res.Variants = make([]Trajectory, 0, n-1)
	for i := 1; i < n; i++ {
		res.Variants = append(res.Variants, s.run(uint32(i), variantYawDamp, variantPitchDamp))
	}
	return res
}

// simulation holds everything that is the same for all trajectories of
// a call.
type simulation struct {
	p       Params
	pattern Pattern
	shots   int
	dt      float64
	seed    uint32

	yawScale, pitchScale float64

	fraction  float64
	airScale  float64
	firstShot float64
	minScale  float64
	maxScale  float64
}

func makeSimulation(p Params, pat Pattern, mode ViewMode, airborne bool) simulation {
	s := simulation{p: p, pattern: pat}

	clip := p.ClipSize
	if clip == 0 {
		clip = defaultClipSize
	}
	s.shots = int(util.Clamp(math.Round(clip), 1, MaxShots))

	s.dt = defaultShotTime
	if p.FireRate > 0 {
		s.dt = 1 / p.FireRate
	}

	s.yawScale = p.YawSoftScale + p.YawHardScale
	s.pitchScale = p.PitchSoftScale + p.PitchHardScale

	s.fraction, s.firstShot = p.HipfireFraction, p.FirstShotHipfire
	s.minScale, s.maxScale = p.MinHipfire, p.MaxHipfire
	s.airScale = 1
	if mode == ADS {
		s.fraction += p.ADSFraction
		s.firstShot *= p.FirstShotADS
		s.minScale *= p.MinADS
		s.maxScale *= p.MaxADS
		if airborne {
			s.airScale = p.AirScaleADS
		}
	}

	air := "ground"
	if airborne {
		air = "air"
	}
	s.seed = rand.HashString(pat.Name + ":" + string(mode) + ":" + air + ":" + strconv.Itoa(s.shots))

	return s
}

// The explicit float64 conversions below keep the compiler from fusing
// multiplies and adds, which would change results on some architectures.

func (s simulation) axisScale(ramp, clamped, lerpStart, lerpEnd float64) float64 {
	if lerpEnd <= lerpStart {
		return clamped
	}
	f := util.Clamp((ramp-lerpStart)/(lerpEnd-lerpStart), 0, 1)
	return s.minScale + float64((s.maxScale-s.minScale)*f)
}

func (s simulation) run(seedOffset uint32, yawDamp, pitchDamp float64) Trajectory {
	p := s.p
	r := rand.Make(s.seed + seedOffset)
	exclude := p.YawInnerExclude

	var yaw, pitch float64
	points := make([]Point, 0, s.shots)
	for i := range s.shots {
		b := s.pattern.Bullets[s.pattern.BulletIndex(i)]

		// Yaw is drawn before pitch.
		randYaw := r.Signed() * b.YawRandom * p.YawRandom * yawDamp
		if exclude > 0 && math.Abs(randYaw) < exclude {
			if randYaw < 0 {
				randYaw = -exclude
			} else {
				randYaw = exclude
			}
		}
		randPitch := r.Signed() * b.PitchRandom * p.PitchRandom * pitchDamp

		ramp := 1 + float64(p.ValuePerShot*float64(i))
		clamped := util.Clamp(ramp, s.minScale, s.maxScale)
		yawAxis := s.axisScale(ramp, clamped, p.YawLerpStart, p.YawLerpEnd)
		pitchAxis := s.axisScale(ramp, clamped, p.PitchLerpStart, p.PitchLerpEnd)

		decay := 1.0
		if t := float64(i) * s.dt; t > p.DecayDelay {
			decay = max(0, 1-float64((t-p.DecayDelay)*p.DecayRate*0.01))
		}

		firstShot := 1.0
		if i == 0 {
			firstShot = s.firstShot
		}
		shotScale := s.fraction * s.airScale * firstShot * decay

		yaw += float64((float64(b.Yaw*p.YawBase) + randYaw) * s.yawScale * yawAxis * shotScale)
		pitch += float64((float64(b.Pitch*p.PitchBase) + randPitch) * s.pitchScale * pitchAxis * shotScale)
		points = append(points, Point{X: yaw, Y: -pitch})
	}

	return Trajectory{Points: points}
}
