package validate

// Suggestion texts. Checks compose: more than one group can contribute to
// the same result.
const (
	suggestFixErrors      = "Corrija os erros antes de usar o SVG"
	suggestRerun          = "Execute novamente a transformação do SVG original"
	suggestReviewRules    = "Revise as heurísticas de classificação de elementos"
	suggestInteractive    = "Use o modo de classificação interativa para marcar as áreas manualmente"
	suggestReviewWarns    = "Revise os avisos para garantir qualidade"
	suggestRestorePointer = "Restaure pointer-events=\"none\" nos elementos decorativos"
)

// Suggestions derives remediation hints from a validation result. The
// checks are independent and evaluated in a fixed order; a clean result
// yields an empty list.
func Suggestions(r *Result) []string {
	var out []string

	if len(r.Errors) > 0 {
		out = append(out, suggestFixErrors, suggestRerun)
	}

	if len(r.ColorableAreas) == 0 {
		out = append(out, suggestReviewRules, suggestInteractive)
	}

	if len(r.Warnings) > 0 {
		out = append(out, suggestReviewWarns)
		for _, w := range r.Warnings {
			if concernsPointerEvents(w) {
				out = append(out, suggestRestorePointer)
				break
			}
		}
	}

	return out
}
