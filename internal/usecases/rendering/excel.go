package rendering

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/wb-report-bot/internal/domain"
	"github.com/vfg2006/wb-report-bot/internal/usecases/analyzing"
	"github.com/vfg2006/wb-report-bot/pkg/utils"
)

// Dark theme palette shared by both sheets.
const (
	colorBackground = "0D0D0D"
	colorHead       = "111111"
	colorRowOdd     = "1E1E1E"
	colorRowEven    = "242424"
	colorRed        = "DC1E1E"
	colorWhite      = "F0F0F0"
	colorGrey       = "888888"
	colorGreen      = "27AE60"
	colorYellow     = "FFC107"
	colorOrange     = "FF6B35"
)

const (
	sheetReport    = "Отчёт"
	sheetPositions = "Позиции"
)

// Number formats for the metric rows.
const (
	fmtCount   = "#,##0"
	fmtMoney   = "#,##0 ₽"
	fmtMoney2  = "#,##0.00 ₽"
	fmtPercent = "0.00%"
)

type reportLine struct {
	label  string
	metric string
	format string
	color  string
	// total rows get the emphasized header background, bold and a larger font
	total bool
}

// workbook carries the open file plus the style cache so each style is
// registered once.
type workbook struct {
	f      *excelize.File
	styles map[string]int
}

// Workbook renders the aggregation into the dark-themed two-sheet XLSX and
// returns the serialized bytes. The positions sheet is only added when there
// is at least one position.
func Workbook(analysis *domain.AggregationResult, positions domain.PositionMap, period domain.Period) ([]byte, error) {
	wb := &workbook{
		f:      excelize.NewFile(),
		styles: make(map[string]int),
	}
	defer wb.f.Close()

	if err := wb.writeReportSheet(analysis, period); err != nil {
		return nil, errors.Wrap(err, "report sheet")
	}

	if len(positions) > 0 {
		if err := wb.writePositionsSheet(positions); err != nil {
			return nil, errors.Wrap(err, "positions sheet")
		}
	}

	buf := new(bytes.Buffer)
	if err := wb.f.Write(buf); err != nil {
		return nil, errors.Wrap(err, "serializing workbook")
	}

	return buf.Bytes(), nil
}

func (wb *workbook) writeReportSheet(analysis *domain.AggregationResult, period domain.Period) error {
	f := wb.f

	if err := f.SetSheetName("Sheet1", sheetReport); err != nil {
		return err
	}

	widths := []float64{3, 32, 18, 14, 3}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetReport, col, col, w); err != nil {
			return err
		}
	}

	wb.fillBackground(sheetReport, 60, len(widths))

	titleStyle := wb.style(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: colorWhite},
		Fill: solidFill(colorHead),
	})
	subStyle := wb.style(&excelize.Style{
		Font: &excelize.Font{Size: 10, Color: colorGrey},
		Fill: solidFill(colorHead),
	})

	f.SetCellValue(sheetReport, "B2", "ОТЧЁТ WILDBERRIES")
	f.SetCellStyle(sheetReport, "A2", "E2", titleStyle)
	f.SetCellValue(sheetReport, "B3", period.Label())
	f.SetCellValue(sheetReport, "D3", "сформирован "+time.Now().Format("02.01.2006 15:04"))
	f.SetCellStyle(sheetReport, "A3", "E3", subStyle)

	t := analysis.Totals
	row := 5
	sections := []struct {
		title string
		lines []reportLine
	}{
		{"ПРОДАЖИ", []reportLine{
			{label: "Количество продаж, шт.", metric: domain.MetricSalesCount, format: fmtCount, color: colorWhite},
			{label: "Выручка (розн. цена)", metric: domain.MetricSalesSum, format: fmtMoney, color: colorWhite},
			{label: "К перечислению (итого)", metric: domain.MetricPpvzSum, format: fmtMoney, color: colorWhite},
			{label: "Возвратов, шт.", metric: domain.MetricReturnsCount, format: fmtCount, color: colorGrey},
			{label: "Сумма возвратов", metric: domain.MetricReturnsSum, format: fmtMoney, color: colorGrey},
		}},
		{"УДЕРЖАНИЯ WILDBERRIES", []reportLine{
			{label: "Вознаграждение ВБ (комиссия)", metric: domain.MetricWBCommission, format: fmtMoney, color: colorYellow},
			{label: "Доля комиссии", metric: domain.MetricCommissionPct, format: fmtPercent, color: colorYellow},
			{label: "Логистика (доставка)", metric: domain.MetricDelivery, format: fmtMoney, color: colorOrange},
			{label: "Доля логистики", metric: domain.MetricDeliveryPct, format: fmtPercent, color: colorOrange},
			{label: "Хранение на складе", metric: domain.MetricStorage, format: fmtMoney2, color: colorWhite},
			{label: "Приёмка товара", metric: domain.MetricAcceptance, format: fmtMoney, color: colorWhite},
			{label: "Прочие удержания", metric: domain.MetricDeduction, format: fmtMoney, color: colorOrange},
			{label: "Штрафы", metric: domain.MetricPenalty, format: fmtMoney, color: colorRed},
			{label: "Итого удержано", metric: domain.MetricTotalDeductions, format: fmtMoney, color: colorRed, total: true},
			{label: "Доля удержаний", metric: domain.MetricTotalDedPct, format: fmtPercent, color: colorRed},
		}},
		{"ИТОГ", []reportLine{
			{label: "Чистыми на счёт", metric: domain.MetricNetPayout, format: fmtMoney, color: colorGreen, total: true},
		}},
	}

	for _, section := range sections {
		if err := wb.writeSection(sheetReport, &row, section.title, section.lines, t); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (wb *workbook) writeSection(sheet string, row *int, title string, lines []reportLine, totals map[string]float64) error {
	f := wb.f

	headStyle := wb.style(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: colorWhite},
		Fill: solidFill(colorHead),
	})
	f.SetCellValue(sheet, cell(2, *row), title)
	if err := f.SetCellStyle(sheet, cell(1, *row), cell(5, *row), headStyle); err != nil {
		return err
	}
	*row++

	for i, line := range lines {
		band := colorRowOdd
		if i%2 == 1 {
			band = colorRowEven
		}
		if line.total {
			band = colorHead
		}

		valueSize := 10.0
		if line.total {
			valueSize = 11
		}

		labelStyle := wb.style(&excelize.Style{
			Font: &excelize.Font{Size: 10, Color: line.color, Bold: line.total},
			Fill: solidFill(band),
		})
		valueStyle := wb.style(&excelize.Style{
			Font:         &excelize.Font{Size: valueSize, Color: line.color, Bold: line.total},
			Fill:         solidFill(band),
			CustomNumFmt: &line.format,
			Alignment:    &excelize.Alignment{Horizontal: "right"},
		})
		fillStyle := wb.style(&excelize.Style{Fill: solidFill(band)})

		value := totals[line.metric]
		if line.format == fmtPercent {
			// percentages are stored as fractions so the format multiplies back
			value /= 100
		}

		f.SetCellValue(sheet, cell(2, *row), line.label)
		f.SetCellValue(sheet, cell(3, *row), value)
		f.SetCellStyle(sheet, cell(1, *row), cell(1, *row), fillStyle)
		f.SetCellStyle(sheet, cell(2, *row), cell(2, *row), labelStyle)
		f.SetCellStyle(sheet, cell(3, *row), cell(3, *row), valueStyle)
		if err := f.SetCellStyle(sheet, cell(4, *row), cell(5, *row), fillStyle); err != nil {
			return err
		}
		*row++
	}

	return nil
}

func (wb *workbook) writePositionsSheet(positions domain.PositionMap) error {
	f := wb.f

	if _, err := f.NewSheet(sheetPositions); err != nil {
		return err
	}

	widths := []float64{3, 30, 10, 10, 10, 10, 14, 3}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetPositions, col, col, w); err != nil {
			return err
		}
	}

	ranked := analyzing.RankByRevenue(positions)
	wb.fillBackground(sheetPositions, len(ranked)+6, len(widths))

	headStyle := wb.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10, Color: colorWhite},
		Fill:      solidFill(colorHead),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	headers := []string{"Товар", "Заказы", "Продажи", "Отмены", "Возвраты", "Выручка"}
	for i, h := range headers {
		f.SetCellValue(sheetPositions, cell(i+2, 2), h)
	}
	if err := f.SetCellStyle(sheetPositions, cell(1, 2), cell(8, 2), headStyle); err != nil {
		return err
	}

	countFmt := fmtCount
	revenueFmt := fmtMoney
	for i, rp := range ranked {
		row := i + 3
		band := colorRowOdd
		if i%2 == 1 {
			band = colorRowEven
		}

		p := rp.Summary
		nameStyle := wb.style(&excelize.Style{
			Font: &excelize.Font{Size: 10, Color: colorWhite},
			Fill: solidFill(band),
		})
		countStyle := func(color string) int {
			return wb.style(&excelize.Style{
				Font:         &excelize.Font{Size: 10, Color: color},
				Fill:         solidFill(band),
				CustomNumFmt: &countFmt,
				Alignment:    &excelize.Alignment{Horizontal: "center"},
			})
		}
		revenueStyle := wb.style(&excelize.Style{
			Font:         &excelize.Font{Size: 10, Color: colorWhite},
			Fill:         solidFill(band),
			CustomNumFmt: &revenueFmt,
			Alignment:    &excelize.Alignment{Horizontal: "right"},
		})
		fillStyle := wb.style(&excelize.Style{Fill: solidFill(band)})

		f.SetCellValue(sheetPositions, cell(2, row), utils.Truncate(p.DisplayName(rp.ID), nameWidth))
		f.SetCellValue(sheetPositions, cell(3, row), p.Ordered)
		f.SetCellValue(sheetPositions, cell(4, row), p.Sold)
		f.SetCellValue(sheetPositions, cell(5, row), p.Cancelled)
		f.SetCellValue(sheetPositions, cell(6, row), p.Returned)
		f.SetCellValue(sheetPositions, cell(7, row), p.Revenue)

		f.SetCellStyle(sheetPositions, cell(1, row), cell(1, row), fillStyle)
		f.SetCellStyle(sheetPositions, cell(2, row), cell(2, row), nameStyle)
		f.SetCellStyle(sheetPositions, cell(3, row), cell(3, row), countStyle(colorWhite))
		f.SetCellStyle(sheetPositions, cell(4, row), cell(4, row), countStyle(counterColor(p.Sold, colorGreen)))
		f.SetCellStyle(sheetPositions, cell(5, row), cell(5, row), countStyle(counterColor(p.Cancelled, colorOrange)))
		f.SetCellStyle(sheetPositions, cell(6, row), cell(6, row), countStyle(counterColor(p.Returned, colorRed)))
		f.SetCellStyle(sheetPositions, cell(7, row), cell(7, row), revenueStyle)
		if err := f.SetCellStyle(sheetPositions, cell(8, row), cell(8, row), fillStyle); err != nil {
			return err
		}
	}

	return nil
}

// counterColor highlights a non-zero counter with its semantic colour and
// mutes zero counters in grey.
func counterColor(n int, active string) string {
	if n > 0 {
		return active
	}
	return colorGrey
}

// fillBackground paints the dark canvas behind the report area.
func (wb *workbook) fillBackground(sheet string, rows, cols int) {
	bg := wb.style(&excelize.Style{Fill: solidFill(colorBackground)})

	lastCol, _ := excelize.ColumnNumberToName(cols)
	wb.f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s%d", lastCol, rows), bg)
}

// style registers a style once and caches the id by its rendered key.
func (wb *workbook) style(s *excelize.Style) int {
	key := styleKey(s)
	if id, ok := wb.styles[key]; ok {
		return id
	}

	id, err := wb.f.NewStyle(s)
	if err != nil {
		// NewStyle only fails on malformed definitions, which are all
		// hardcoded here
		return 0
	}
	wb.styles[key] = id
	return id
}

func styleKey(s *excelize.Style) string {
	key := ""
	if s.Font != nil {
		key += fmt.Sprintf("f:%v:%g:%s;", s.Font.Bold, s.Font.Size, s.Font.Color)
	}
	if s.Fill.Type != "" && len(s.Fill.Color) > 0 {
		key += "bg:" + s.Fill.Color[0] + ";"
	}
	if s.CustomNumFmt != nil {
		key += "fmt:" + *s.CustomNumFmt + ";"
	}
	if s.Alignment != nil {
		key += "al:" + s.Alignment.Horizontal + ";"
	}
	return key
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
