// kv/testdata_test.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kv

const weaponFile = `WeaponData
{
	// Basic info
	"printname"                             "#WPN_R101"
	"ammo_clip_size"                        "28"
	"fire_rate"                             13.5 // rounds per second
	"viewkick_pattern"                      "r101_2"
	"viewkick_yaw_random"                   0.45
	"viewkick_pitch_base"                   -0.6

	Mods
	{
		gold
		{
		}
		survival_finite_ammo
		{
			"uses_ammo_pool"                    "1"
			"fire_rate"                         "*0.9"
		}
	}

	RUI_CrosshairData
	{
		DefaultArgs
		{
			adjustedSpread weapon_spread
			isFiring       weapon_is_firing
		}

		Crosshair_2
		{
			"ui"           "ui/crosshair_circle2"
			Args
			{
				isActive   "weapon_is_active"
			}
		}
		Crosshair_1
		{
			"ui"           "ui/crosshair_tri"
			"base_spread"  "3.0"
			"ignored"      "x"
			Args
			{
				isFiring   weapon_is_firing
				ammoFrac   "progress_weapon_clip_ammo_frac"
			}
		}
	}

	UiData1
	{
		"ui_icon"                               "rui/hud/r101"
	}
}
`
