package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edocta/consulta-vehicular/dto"
)

const pageDump = `Marca:
TOYOTA
Modelo:
2025
Tipo:
Color:
BLANCO
REFRENDO 2024 $4,000.00
DONATIVOS PARA CRUZ ROJA $50.00
TOTAL A PAGAR: $4,050.00
`

func TestVehicleRows(t *testing.T) {
	rows := vehicleRows([]string{"Marca:", "TOYOTA", "Tipo:", "Color:", "BLANCO", "NIV:"})

	assert.Equal(t, []table.Row{
		{"Marca:", "TOYOTA"},
		{"Tipo:", ""},
		{"Color:", "BLANCO"},
		{"NIV:", ""},
	}, rows)
}

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		jsonOutput = false
		parsePlate = ""
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func writeDump(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.txt")
	require.NoError(t, os.WriteFile(path, []byte(pageDump), 0o644))
	return path
}

func TestParseCommandTables(t *testing.T) {
	out := runRoot(t, "parse", writeDump(t), "--placa", "abc 123")

	assert.Contains(t, out, "Vehículo ABC123")
	assert.Contains(t, out, "TOYOTA")
	assert.Contains(t, out, "REFRENDO 2024 $4,000.00")
	assert.Contains(t, out, "donativo cruz roja")
	assert.Contains(t, out, "TOTAL A PAGAR: $4,050.00")
}

func TestParseCommandJSON(t *testing.T) {
	out := runRoot(t, "parse", writeDump(t), "--placa", "ABC123", "--json")

	var result dto.QueryResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "ABC123", result.Plate)
	assert.Equal(t, []string{"REFRENDO 2024 $4,000.00"}, result.Charges)
	assert.True(t, result.SubsidiesAndDonations.RedCrossDonation.Found)
	assert.Equal(t, "$50.00", result.Summary.Breakdown.RedCrossDonation)
}

func TestParseCommandMissingFile(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "missing.txt")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
