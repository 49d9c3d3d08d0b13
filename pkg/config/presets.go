package config

import "time"

// MotionPreset returns the animation timings for a named preset. If the
// name is not recognized, the "standard" preset is returned.
//
//	standard  typewriter 800ms then 35ms/grapheme, carousel 3s, idle 5s
//	brisk     typewriter 300ms then 15ms/grapheme, carousel 2s, idle 3s
//	calm      typewriter 1.2s then 60ms/grapheme, carousel 5s, idle 8s
//	instant   text appears at once, no smooth scroll, carousel 3s, idle 5s
func MotionPreset(name string) AnimationConfig {
	switch name {
	case "brisk":
		return briskPreset()
	case "calm":
		return calmPreset()
	case "instant":
		return instantPreset()
	default:
		return standardPreset()
	}
}

// MotionPresetNames lists the recognized presets.
func MotionPresetNames() []string {
	return []string{"standard", "brisk", "calm", "instant"}
}

func standardPreset() AnimationConfig {
	return AnimationConfig{
		Preset:             "standard",
		TypewriterDelay:    Duration{800 * time.Millisecond},
		TypewriterInterval: Duration{35 * time.Millisecond},
		TypewriterChunk:    1,
		CarouselPeriod:     Duration{3 * time.Second},
		CarouselIdle:       Duration{5 * time.Second},
		SmoothScroll:       true,
	}
}

func briskPreset() AnimationConfig {
	return AnimationConfig{
		Preset:             "brisk",
		TypewriterDelay:    Duration{300 * time.Millisecond},
		TypewriterInterval: Duration{15 * time.Millisecond},
		TypewriterChunk:    2,
		CarouselPeriod:     Duration{2 * time.Second},
		CarouselIdle:       Duration{3 * time.Second},
		SmoothScroll:       true,
	}
}

func calmPreset() AnimationConfig {
	return AnimationConfig{
		Preset:             "calm",
		TypewriterDelay:    Duration{1200 * time.Millisecond},
		TypewriterInterval: Duration{60 * time.Millisecond},
		TypewriterChunk:    1,
		CarouselPeriod:     Duration{5 * time.Second},
		CarouselIdle:       Duration{8 * time.Second},
		SmoothScroll:       true,
	}
}

// instantPreset reveals whole headers on the first tick.
func instantPreset() AnimationConfig {
	return AnimationConfig{
		Preset:             "instant",
		TypewriterDelay:    Duration{0},
		TypewriterInterval: Duration{time.Millisecond},
		TypewriterChunk:    1 << 16,
		CarouselPeriod:     Duration{3 * time.Second},
		CarouselIdle:       Duration{5 * time.Second},
		SmoothScroll:       false,
	}
}
