package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"go-hrgen/internal/dataset"
)

func sampleTable() *dataset.Table {
	return &dataset.Table{
		Name:    dataset.TableEmployee,
		Columns: []string{"employee_id", "first_name", "termination_date", "seniority_level"},
		Rows: [][]any{
			{"EMP000001", "Alice", nil, 5},
			{"EMP000002", "Bruno", "2021-12-31", 2},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleTable())
	assert.NoError(t, err)

	want := "employee_id,first_name,termination_date,seniority_level\n" +
		"EMP000001,Alice,,5\n" +
		"EMP000002,Bruno,2021-12-31,2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVDir(t *testing.T) {
	dir := t.TempDir()
	tables := map[string]*dataset.Table{
		dataset.TableEmployee: sampleTable(),
		dataset.TableJobRole: {
			Name:    dataset.TableJobRole,
			Columns: []string{"job_id"},
			Rows:    [][]any{{"JOB001"}},
		},
	}

	err := WriteCSVDir(filepath.Join(dir, "out"), tables)
	assert.NoError(t, err)

	for name := range tables {
		_, err := os.Stat(filepath.Join(dir, "out", name+".csv"))
		assert.NoError(t, err, "missing %s.csv", name)
	}
}

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.xlsx")
	tables := map[string]*dataset.Table{
		dataset.TableEmployee: sampleTable(),
		dataset.TableJobRole: {
			Name:    dataset.TableJobRole,
			Columns: []string{"job_id"},
			Rows:    [][]any{{"JOB001"}},
		},
	}

	err := WriteXLSX(path, tables)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{dataset.TableEmployee, dataset.TableJobRole}, f.GetSheetList())

	rows, err := f.GetRows(dataset.TableJobRole)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"job_id"}, {"JOB001"}}, rows)
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "abc", formatCell("abc"))
	assert.Equal(t, "0.15", formatCell(0.15))
	assert.Equal(t, "3", formatCell(3))
}
