package debug

// KonamiSequence is up up down down left right left right b a enter,
// in Bubble Tea key names.
var KonamiSequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a", "enter"}

// Konami matches a key sequence one key at a time.
type Konami struct {
	sequence []string
	index    int
}

// NewKonami creates a matcher for KonamiSequence.
func NewKonami() *Konami {
	return NewSequence(KonamiSequence)
}

// NewSequence creates a matcher for an arbitrary non-empty key sequence.
func NewSequence(keys []string) *Konami {
	return &Konami{sequence: keys}
}

// Press advances the matcher and reports whether the sequence just completed.
// A wrong key restarts matching, counting the key itself if it begins the sequence.
func (k *Konami) Press(key string) bool {
	switch {
	case key == k.sequence[k.index]:
		k.index++
	case k.index == 2 && key == k.sequence[1] && k.sequence[0] == k.sequence[1]:
		// Extra repeats of a doubled first key keep the prefix matched
		k.index = 2
	case key == k.sequence[0]:
		k.index = 1
	default:
		k.index = 0
	}

	if k.index == len(k.sequence) {
		k.index = 0
		return true
	}
	return false
}

// Progress returns how many keys of the sequence have been matched.
func (k *Konami) Progress() int {
	return k.index
}
