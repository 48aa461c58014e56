package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/pdf"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/report"
)

var (
	inventoryOut  string
	orderOut      string
	exportCenters string
	exportOrderID int64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta informes a fichero",
}

var exportInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Exporta el inventario a XLSX",
	Example: `  jungla export inventory --out inventario.xlsx
  jungla export inventory --centers 1,3 --out centros.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		centers, err := parseCenters(exportCenters)
		if err != nil {
			return err
		}
		return withLogistics(cmd, func(ctx context.Context, svc *logistics.Service) error {
			return writeFile(&inventoryOut, func(w io.Writer) error {
				return exportInventory(ctx, svc, centers, w)
			})
		})
	},
}

var exportSupplierOrderCmd = &cobra.Command{
	Use:     "supplier-order",
	Short:   "Exporta un pedido a proveedor a PDF",
	Example: `  jungla export supplier-order --id 42 --out PO-42.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOrderID <= 0 {
			return fmt.Errorf("--id es obligatorio")
		}
		return withLogistics(cmd, func(ctx context.Context, svc *logistics.Service) error {
			return writeFile(&orderOut, func(w io.Writer) error {
				return exportSupplierOrder(ctx, svc, exportOrderID, &orderOut, w)
			})
		})
	},
}

func init() {
	exportInventoryCmd.Flags().StringVar(&inventoryOut, "out", "inventario.xlsx", "Fichero de salida")
	exportInventoryCmd.Flags().StringVar(&exportCenters, "centers", "", "IDs de centro separados por coma")

	exportSupplierOrderCmd.Flags().StringVar(&orderOut, "out", "", "Fichero de salida (por defecto <order_number>.pdf)")
	exportSupplierOrderCmd.Flags().Int64Var(&exportOrderID, "id", 0, "ID del pedido")
}

// exportInventory escribe el XLSX. centers nil = todo el inventario.
func exportInventory(ctx context.Context, svc *logistics.Service, centers []int64, w io.Writer) error {
	r := svc.GetInventoryItems(ctx)
	if centers != nil {
		r = svc.GetInventoryByCenters(ctx, centers)
	}
	if !r.IsOk() {
		return fmt.Errorf("cargar inventario: %s", r.Reason())
	}
	_, err := report.NewInventoryWorkbook(r.Value()).WriteTo(w)
	return err
}

// exportSupplierOrder escribe el PDF. Si *out está vacío lo fija a <order_number>.pdf.
func exportSupplierOrder(ctx context.Context, svc *logistics.Service, id int64, out *string, w io.Writer) error {
	r := svc.GetSupplierOrderByID(ctx, id)
	if !r.IsOk() {
		return fmt.Errorf("pedido %d: %s", id, r.Reason())
	}
	order := r.Value()
	if *out == "" {
		*out = order.OrderNumber + ".pdf"
	}
	b, err := pdf.NewSupplierOrderPDF("").Generate(order, svc.GetSupplierByID(ctx, order.SupplierID).ValueOr(nil))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// writeFile vuelca en *path lo que escriba fn. "-" escribe en stdout.
// *path se lee después de fn, que puede fijar el nombre por defecto.
func writeFile(path *string, fn func(w io.Writer) error) error {
	if *path == "-" {
		return fn(os.Stdout)
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("--out es obligatorio")
	}
	if err := os.WriteFile(*path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", *path, err)
	}
	fmt.Fprintf(os.Stderr, "escrito %s (%d bytes)\n", *path, buf.Len())
	return nil
}

func parseCenters(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	ids := []int64{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("--centers: %q no es un id", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
