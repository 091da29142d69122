package domain

// Label is the binary decision space of the classifier.
type Label string

const (
	LabelSpam Label = "spam"
	LabelHam  Label = "ham"
)

// SpamClass is the classifier class index that denotes spam.
const SpamClass = 1

// LabelFromPrediction maps a raw classifier prediction to a Label.
func LabelFromPrediction(pred int) Label {
	if pred == SpamClass {
		return LabelSpam
	}
	return LabelHam
}
