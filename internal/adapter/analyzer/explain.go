package analyzer

import (
	"fmt"
	"strings"

	"textlens/internal/domain"
)

const (
	intensityStrong = "kuchli darajada"
	intensityMild   = "biroz"
)

func (c *SentimentClassifier) explain(label domain.Sentiment, pos, neg, neut *markerHits, keywords []string) string {
	var sb strings.Builder

	switch {
	case label == domain.Positive:
		fmt.Fprintf(&sb, "Matn %s ijobiy kayfiyatni ifodalaydi, chunki %s kabi so'zlar ishlatilgan.",
			c.intensity(pos.count), quoteAll(pos.words))
	case label == domain.Negative:
		fmt.Fprintf(&sb, "Matn %s salbiy his-tuyg'ularni ifodalaydi, chunki %s kabi so'zlar ishlatilgan.",
			c.intensity(neg.count), quoteAll(neg.words))
	case pos.count > 0 && pos.count == neg.count:
		sb.WriteString("Matn ijobiy va salbiy his-tuyg'ular o'rtasida muvozanatli.")
	case neut.count > 0:
		fmt.Fprintf(&sb, "Matn betaraf ohangda yozilgan, %s kabi so'zlar ishlatilgan.", quoteAll(neut.words))
	default:
		sb.WriteString("Matnda aniq his-tuyg'ular topilmadi.")
	}

	sb.WriteString(" ")
	sb.WriteString(topicClause(keywords))
	return sb.String()
}

func (c *SentimentClassifier) intensity(matches int) string {
	if matches > c.strongThreshold {
		return intensityStrong
	}
	return intensityMild
}

func topicClause(keywords []string) string {
	switch len(keywords) {
	case 0:
		return "Mavzu aniq emas."
	case 1:
		return fmt.Sprintf("Asosiy mavzu: %q.", keywords[0])
	default:
		return fmt.Sprintf("Asosiy mavzu: %q va %q.", keywords[0], keywords[1])
	}
}

func quoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = `"` + w + `"`
	}
	return strings.Join(quoted, ", ")
}
