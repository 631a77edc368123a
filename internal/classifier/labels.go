package classifier

// Label is the rhetorical category assigned to a prompt.
type Label string

const (
	LabelDescription Label = "description"
	LabelExplanation Label = "explanation"
	LabelDefinition  Label = "definition"
	LabelComparison  Label = "comparison"

	// LabelUnrecognized covers anything the model produces outside the
	// known set, so downstream template selection is total.
	LabelUnrecognized Label = "unrecognized"
)

// classLabels maps model output indices to labels. The order matches the
// output head of the classification model.
var classLabels = [...]Label{
	LabelDescription,
	LabelExplanation,
	LabelDefinition,
	LabelComparison,
}

// Known reports whether the label is one of the four model classes.
func (l Label) Known() bool {
	for _, known := range classLabels {
		if l == known {
			return true
		}
	}
	return false
}

// labelFromIndex converts a model output index to a Label.
func labelFromIndex(i int) Label {
	if i < 0 || i >= len(classLabels) {
		return LabelUnrecognized
	}
	return classLabels[i]
}

// ParseLabel validates a label string at the classifier boundary.
// Unknown values map to LabelUnrecognized rather than passing through.
func ParseLabel(s string) Label {
	switch Label(s) {
	case LabelDescription, LabelExplanation, LabelDefinition, LabelComparison:
		return Label(s)
	default:
		return LabelUnrecognized
	}
}

// argmax returns the index of the largest score.
func argmax(scores []float32) int {
	best := -1
	var bestScore float32
	for i, s := range scores {
		if best == -1 || s > bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}
