package sheet_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/deadline/pkg/schedule"
	"github.com/dmitrymomot/deadline/pkg/sheet"
)

const testSheet = "25AW"

func testLayout() sheet.Layout {
	return sheet.Layout{
		Sheet:    testSheet,
		FirstRow: 8,
		Person:   2,
		Brand:    3,
		Item:     4,
		Flag:     sheet.Column(5),
		Due:      19,
	}
}

// workbook builds an xlsx file and returns its bytes.
func workbook(t *testing.T, build func(f *excelize.File)) []byte {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	_, err := f.NewSheet(testSheet)
	require.NoError(t, err)

	// Header rows that must be skipped.
	require.NoError(t, f.SetCellValue(testSheet, "C7", "担当者"))
	require.NoError(t, f.SetCellValue(testSheet, "T7", "縫製納期"))

	build(f)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func setRow(t *testing.T, f *excelize.File, line int, person, brand, item string, flag any, due any) {
	t.Helper()
	set := func(col string, v any) {
		if v == nil {
			return
		}
		require.NoError(t, f.SetCellValue(testSheet, col+strconv.Itoa(line), v))
	}
	set("C", person)
	set("D", brand)
	set("E", item)
	set("F", flag)
	set("T", due)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	raw := workbook(t, func(f *excelize.File) {
		setRow(t, f, 8, "山田", "BRAND-A", "ABC123", true, time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC))
		setRow(t, f, 9, " 佐藤 ", "BRAND-B", "XYZ789", "FALSE", "2025/08/09")
		setRow(t, f, 10, "鈴木", "BRAND-C", "NODATE", nil, "未定")
	})

	rows, err := sheet.Extract(raw, testLayout())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "山田", rows[0].Person)
	require.Equal(t, "BRAND-A", rows[0].Brand)
	require.Equal(t, "ABC123", rows[0].Item)
	require.True(t, rows[0].Flag)
	require.Equal(t, schedule.NewDate(2025, time.August, 8), rows[0].Due)
	require.Equal(t, 8, rows[0].Line)

	require.Equal(t, "佐藤", rows[1].Person, "text fields are trimmed")
	require.False(t, rows[1].Flag)
	require.Equal(t, schedule.NewDate(2025, time.August, 9), rows[1].Due)

	require.True(t, rows[2].Due.IsZero(), "unparseable date yields zero date")
	require.Equal(t, 10, rows[2].Line)
}

func TestExtract_WithoutFlagColumn(t *testing.T) {
	t.Parallel()

	raw := workbook(t, func(f *excelize.File) {
		setRow(t, f, 8, "山田", "BRAND-A", "ABC123", true, "2025-08-08")
	})

	layout := testLayout()
	layout.Flag = nil

	rows, err := sheet.Extract(raw, layout)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.False(t, rows[0].Flag)
}

func TestExtract_ShortRows(t *testing.T) {
	t.Parallel()

	raw := workbook(t, func(f *excelize.File) {
		// Only person set: the due column lies beyond the row's last cell.
		setRow(t, f, 8, "山田", "", "", nil, nil)
	})

	rows, err := sheet.Extract(raw, testLayout())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Empty(t, rows[0].Item)
	require.True(t, rows[0].Due.IsZero())
}

func TestExtract_CellStyles(t *testing.T) {
	t.Parallel()

	raw := workbook(t, func(f *excelize.File) {
		setRow(t, f, 8, "山田", "A", "PINK", nil, "2025-08-08")
		setRow(t, f, 9, "山田", "A", "PLAIN", nil, "2025-08-08")
		setRow(t, f, 10, "山田", "A", "RED-FONT", nil, "2025-08-08")

		pink, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#F7DFDF"}, Pattern: 1},
		})
		require.NoError(t, err)
		require.NoError(t, f.SetCellStyle(testSheet, "T8", "T8", pink))

		red, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Color: "#FF0000"},
		})
		require.NoError(t, err)
		require.NoError(t, f.SetCellStyle(testSheet, "T10", "T10", red))
	})

	rows, err := sheet.Extract(raw, testLayout())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	t.Run("background rule drops the pink row", func(t *testing.T) {
		t.Parallel()
		kept := sheet.Exclude(rows, sheet.BackgroundIn(sheet.DefaultSkipBackground...))
		require.Len(t, kept, 2)
		require.Equal(t, "PLAIN", kept[0].Item)
		require.Equal(t, "RED-FONT", kept[1].Item)
	})

	t.Run("non-white rule drops colored rows", func(t *testing.T) {
		t.Parallel()
		kept := sheet.Exclude(rows, sheet.NonWhite())
		require.Len(t, kept, 1)
		require.Equal(t, "PLAIN", kept[0].Item)
	})
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not a workbook", func(t *testing.T) {
		t.Parallel()
		_, err := sheet.Extract([]byte("not a zip"), testLayout())
		require.ErrorIs(t, err, sheet.ErrOpenWorkbook)
	})

	t.Run("missing sheet", func(t *testing.T) {
		t.Parallel()
		raw := workbook(t, func(*excelize.File) {})
		layout := testLayout()
		layout.Sheet = "26SS"
		_, err := sheet.Extract(raw, layout)
		require.ErrorIs(t, err, sheet.ErrSheetNotFound)
	})

	t.Run("invalid layout", func(t *testing.T) {
		t.Parallel()
		layout := testLayout()
		layout.FirstRow = 0
		_, err := sheet.Extract(nil, layout)
		require.ErrorIs(t, err, sheet.ErrInvalidLayout)
	})
}

func TestLayout_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, testLayout().Validate())

	layout := testLayout()
	layout.Sheet = ""
	require.ErrorIs(t, layout.Validate(), sheet.ErrInvalidLayout)

	layout = testLayout()
	layout.Flag = sheet.Column(-1)
	require.ErrorIs(t, layout.Validate(), sheet.ErrInvalidLayout)

	require.True(t, testLayout().HasFlag())
}
