package analysis

import "github.com/dayflow-app/dayflow/internal/domain"

// Classification is the classifier's verdict for one day's total hours.
type Classification struct {
	Level           domain.WorkloadLevel
	Warnings        []string
	Recommendations []string
}

// Classify maps total committed hours to a workload level with its baseline
// warnings and recommendations. Thresholds are checked top-down, first
// match wins; no warning is ever produced below the heavy tier. The
// function never inspects individual tasks, only the aggregate.
func Classify(totalHours float64) Classification {
	switch {
	case totalHours > 10:
		return Classification{
			Level: domain.LevelVeryHeavy,
			Warnings: []string{
				"Your workload is very heavy: over 10 hours of tasks today.",
			},
			Recommendations: []string{
				"Consider reducing the load or moving some tasks to another day.",
				"Take a short break every hour to stay effective.",
			},
		}
	case totalHours > 8:
		return Classification{
			Level: domain.LevelHeavy,
			Warnings: []string{
				"Your workload is heavy: over 8 hours of tasks today.",
			},
			Recommendations: []string{
				"Schedule breaks between tasks to avoid burning out.",
			},
		}
	case totalHours > 6:
		return Classification{
			Level: domain.LevelModerate,
			Recommendations: []string{
				"Your workload is moderate. Keep a steady pace through the day.",
			},
		}
	case totalHours > 0:
		return Classification{
			Level: domain.LevelLight,
			Recommendations: []string{
				"Your workload is light. There is room for more if you want it.",
			},
		}
	default:
		return Classification{
			Level: domain.LevelFullyFree,
			Recommendations: []string{
				"Your day is fully free. Plan something new or take a proper rest.",
			},
		}
	}
}
