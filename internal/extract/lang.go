package extract

import "github.com/abadojack/whatlanggo"

// Detector classifies a short string as English or not. It is a pluggable
// capability so tests can substitute a deterministic stub; any panic or
// failure inside a detector is treated as "not English" by the stages.
type Detector interface {
	IsEnglish(text string) bool
}

// WhatlangDetector is the default Detector, backed by whatlanggo's
// trigram language profiles.
type WhatlangDetector struct{}

// IsEnglish reports whether text is classified as English.
func (WhatlangDetector) IsEnglish(text string) bool {
	return whatlanggo.Detect(text).Lang == whatlanggo.Eng
}

// isEnglish calls det safely: a nil detector or a detector that panics
// excludes the word rather than failing the stage.
func isEnglish(det Detector, text string) (ok bool) {
	if det == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return det.IsEnglish(text)
}
