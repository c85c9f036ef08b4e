package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildSheet(t *testing.T) {
	headers := []string{"Name", "Phone", "Email"}
	rows := [][]interface{}{
		{"Asha", "111", "asha@example.com"},
		{"Ravi", "222", "ravi@example.com"},
		{"Mira", "333", "mira@example.com"},
	}

	data, err := BuildSheet("Contacts", headers, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, headers, got[0])
	require.Equal(t, []string{"Asha", "111", "asha@example.com"}, got[1])
	require.Equal(t, []string{"Mira", "333", "mira@example.com"}, got[3])
}

func TestBuildSheet_NoRows(t *testing.T) {
	data, err := BuildSheet("Staff", []string{"First Name", "Last Name"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Staff")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
