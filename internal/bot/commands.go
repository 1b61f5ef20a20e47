package bot

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/pkg/utils"
)

const periodUsage = "📅 Укажи две даты через пробел:\n" +
	"`/period ДД.ММ.ГГГГ ДД.ММ.ГГГГ`\n\n" +
	"Примеры:\n" +
	"`/period 01.01.2025 31.01.2025`\n" +
	"`/period 10.02.2025 19.02.2025`"

const compareUsage = "📊 Сравни два периода:\n" +
	"`/compare ДД.ММ.ГГГГ ДД.ММ.ГГГГ ДД.ММ.ГГГГ ДД.ММ.ГГГГ`\n\n" +
	"Первые две даты — период 1️⃣, вторые две — период 2️⃣\n\n" +
	"Примеры:\n" +
	"`/compare 01.01.2025 31.01.2025 01.02.2025 28.02.2025`\n" +
	"`/compare 01.02.2025 07.02.2025 08.02.2025 14.02.2025`"

const badDateFormat = "❌ Неверный формат даты. Используй ДД.ММ.ГГГГ"

func splitArgs(raw string) []string {
	return strings.Fields(raw)
}

// parsePeriodArgs reads the two DD.MM.YYYY arguments of /period. The error
// text is the user-facing reply.
func parsePeriodArgs(args []string) (domain.Period, error) {
	if len(args) != 2 {
		return domain.Period{}, errors.New(periodUsage)
	}

	from, err := utils.ParseCommandDate(args[0])
	if err != nil {
		return domain.Period{}, errors.New(badDateFormat + "\nПример: `/period 01.02.2025 28.02.2025`")
	}

	to, err := utils.ParseCommandDate(args[1])
	if err != nil {
		return domain.Period{}, errors.New(badDateFormat + "\nПример: `/period 01.02.2025 28.02.2025`")
	}

	return domain.NewPeriod(from, to), nil
}

// parseCompareArgs reads the four DD.MM.YYYY arguments of /compare.
func parseCompareArgs(args []string) (domain.Period, domain.Period, error) {
	if len(args) != 4 {
		return domain.Period{}, domain.Period{}, errors.New(compareUsage)
	}

	dates := make([]domain.Period, 0, 2)
	for i := 0; i < 4; i += 2 {
		from, err := utils.ParseCommandDate(args[i])
		if err != nil {
			return domain.Period{}, domain.Period{}, errors.New(badDateFormat + "\n\n" + compareUsage)
		}

		to, err := utils.ParseCommandDate(args[i+1])
		if err != nil {
			return domain.Period{}, domain.Period{}, errors.New(badDateFormat + "\n\n" + compareUsage)
		}

		dates = append(dates, domain.NewPeriod(from, to))
	}

	return dates[0], dates[1], nil
}
