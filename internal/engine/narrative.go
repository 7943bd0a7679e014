package engine

import "strings"

// buildNarrative produces one to three sentences: an opener chosen by the
// same bands as the labels, then the weak areas (factors under 6), then the
// strong points (factors at 8 or above). Weak areas always come first.
func buildNarrative(overall int, factors []Factor) string {
	var sb strings.Builder

	switch {
	case overall >= 80:
		sb.WriteString("This post is in excellent shape and has real viral potential.")
	case overall >= 65:
		sb.WriteString("This is a strong post that should perform well with your audience.")
	case overall >= 50:
		sb.WriteString("This post is solid but has room to grow before publishing.")
	case overall >= 35:
		sb.WriteString("This post needs some work to stand out in a busy feed.")
	default:
		sb.WriteString("This post is likely to be overlooked as written.")
	}

	var weak, strong []string
	for _, f := range factors {
		if f.Score < 6 {
			weak = append(weak, string(f.Name))
		}
		if f.Score >= 8 {
			strong = append(strong, string(f.Name))
		}
	}

	if len(weak) > 0 {
		sb.WriteString(" Weak areas: ")
		sb.WriteString(strings.Join(weak, ", "))
		sb.WriteString(".")
	}
	if len(strong) > 0 {
		sb.WriteString(" Strong points: ")
		sb.WriteString(strings.Join(strong, ", "))
		sb.WriteString(".")
	}

	return sb.String()
}
