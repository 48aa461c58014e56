package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// stubItems repositorio de inventario fijo para la CLI.
type stubItems struct {
	items []entity.InventoryItem
}

func (s *stubItems) List(context.Context) ([]entity.InventoryItem, error) { return s.items, nil }

func (s *stubItems) ListByCenters(_ context.Context, ids []int64) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, it := range s.items {
		for _, id := range ids {
			if it.CenterID == id {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (s *stubItems) GetByID(context.Context, int64) (*entity.InventoryItem, error) { return nil, nil }

func (s *stubItems) Create(context.Context, *entity.InventoryItem) (*entity.InventoryItem, error) {
	return nil, nil
}

func (s *stubItems) Update(context.Context, int64, entity.InventoryItemPatch) (*entity.InventoryItem, error) {
	return nil, nil
}

func (s *stubItems) Delete(context.Context, int64) error { return nil }

func newStubService() *logistics.Service {
	items := &stubItems{items: []entity.InventoryItem{
		{ID: 1, CenterID: 1, NombreItem: "Mancuerna 10kg", Quantity: 20, MinStock: 5, PurchasePrice: decimal.NewFromInt(25)},
		{ID: 2, CenterID: 2, NombreItem: "Esterilla", Quantity: 3, MinStock: 5},
		{ID: 3, CenterID: 2, NombreItem: "Polo M", Quantity: 0, MinStock: 2},
	}}
	return logistics.NewService(logistics.Repositories{Items: items}, nil, logger.Nop())
}

func TestPrintLowStock_Tabla(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printLowStock(context.Background(), newStubService(), &out))

	s := out.String()
	assert.Contains(t, s, "ARTÍCULO")
	assert.Contains(t, s, "Esterilla")
	assert.Contains(t, s, "Polo M")
	assert.NotContains(t, s, "Mancuerna")
}

func TestExportInventory_FiltraCentros(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, exportInventory(context.Background(), newStubService(), []int64{2}, &out))

	f, err := excelize.OpenReader(&out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	assert.Equal(t, "Esterilla", rows[1][2])
	assert.Equal(t, "Polo M", rows[2][2])
}

func TestParseCenters(t *testing.T) {
	ids, err := parseCenters("1, 3,,7")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 7}, ids)

	ids, err = parseCenters("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseCenters("1,x")
	assert.Error(t, err)
}

func TestWriteFile_NombreFijadoPorFn(t *testing.T) {
	dir := t.TempDir()
	var out string
	err := writeFile(&out, func(w io.Writer) error {
		out = filepath.Join(dir, "PO-1.pdf")
		_, err := w.Write([]byte("pdf"))
		return err
	})
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(b))
}

func TestWriteFile_SinNombre(t *testing.T) {
	var out string
	err := writeFile(&out, func(w io.Writer) error { return nil })
	assert.Error(t, err)
}
