package usecase

import (
	"fmt"
	"strings"

	"textlens/internal/domain"
)

// render fills Summary and Message from the report fields.
func render(r *domain.AnalysisReport) {
	r.Summary = summary(r)

	var sb strings.Builder
	sb.WriteString("Matn tahlili natijalari")
	if r.Partial {
		sb.WriteString(" (qisman tahlil)")
	}
	sb.WriteString(":\n")

	fmt.Fprintf(&sb, "- Bo'shliqsiz belgilarni soni: %d\n", r.Stats.Characters)
	fmt.Fprintf(&sb, "- So'zlar soni: %d\n", r.Stats.Words)
	fmt.Fprintf(&sb, "- Jumlalar soni: %d\n", r.Stats.Sentences)
	fmt.Fprintf(&sb, "- Hissiyot tahlili: %s\n", r.Sentiment.Label.Label())
	sb.WriteString("  Tahlil tafsilotlari: ")
	if r.Sentiment.Explanation != "" {
		sb.WriteString(r.Sentiment.Explanation)
		sb.WriteString(" ")
	}
	fmt.Fprintf(&sb, "Ishonch darajasi: %d%%.\n", r.Sentiment.Confidence)

	if r.Origin == domain.OriginLocal {
		if len(r.Keywords) == 0 {
			sb.WriteString("- Kalit so'zlar: Muhim kalit so'z topilmadi.\n")
		} else {
			fmt.Fprintf(&sb, "- Kalit so'zlar: %s\n", strings.Join(r.Keywords, ", "))
		}
	}

	fmt.Fprintf(&sb, "- Matn mavzusi: %s\n", r.Topic)

	if r.Readability.Grade == domain.Indeterminate {
		fmt.Fprintf(&sb, "- O'qish qulayligi: %s\n", r.Readability.Grade.Label())
	} else {
		fmt.Fprintf(&sb, "- O'qish qulayligi: %s (%.2f ball)\n", r.Readability.Grade.Label(), r.Readability.Score)
	}

	sb.WriteString("Xulosa: ")
	sb.WriteString(r.Summary)

	r.Message = sb.String()
}

func summary(r *domain.AnalysisReport) string {
	mood := r.Sentiment.Label.Label()
	if r.Origin == domain.OriginRemote {
		topic := strings.TrimRight(r.Topic, ".!")
		return fmt.Sprintf("Ushbu matn %s kayfiyatni ifodalab, asosan %s.", mood, strings.ToLower(topic))
	}
	return fmt.Sprintf("Matn %d ta jumladan va %d ta so'zdan iborat bo'lib, %s kayfiyatni ifodalaydi.",
		r.Stats.Sentences, r.Stats.Words, mood)
}
