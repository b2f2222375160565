package scheduler

import (
	"fmt"

	"github.com/alexanderramin/lumieres/internal/domain"
)

// StatusMessage renders the encouragement line shown under the statistics.
func StatusMessage(s Status) string {
	n := s.Diff
	if n < 0 {
		n = -n
	}

	switch s.Label {
	case domain.ScheduleAhead:
		return fmt.Sprintf("Tu es en avance de %d %s sur ton plan. Continue comme ça !", n, dayWord(n))
	case domain.ScheduleBehind:
		return fmt.Sprintf("Tu as %d %s de retard sur ton plan, mais tu peux rattraper en avançant un peu plus chaque jour.", n, dayWord(n))
	case domain.ScheduleOnTime:
		return "Tu es à l'heure dans ton plan de lecture. Garde ce rythme !"
	default:
		return "Ton plan de lecture n'a pas encore commencé. Prépare ton coeur pour le grand départ."
	}
}

func dayWord(n int) string {
	if n > 1 {
		return "jours"
	}
	return "jour"
}
