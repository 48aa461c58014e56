package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
)

var lowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "Lista los artículos en o por debajo del stock mínimo",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogistics(cmd, func(ctx context.Context, svc *logistics.Service) error {
			return printLowStock(ctx, svc, os.Stdout)
		})
	},
}

func printLowStock(ctx context.Context, svc *logistics.Service, out io.Writer) error {
	r := svc.GetLowStockItems(ctx)
	if !r.IsOk() {
		return fmt.Errorf("cargar inventario: %s", r.Reason())
	}
	items := r.Value()
	if len(items) == 0 {
		fmt.Fprintln(out, "Sin artículos a reponer")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCENTRO\tARTÍCULO\tCANTIDAD\tMÍNIMO\tESTADO")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%s\n", it.ID, it.CenterID, it.NombreItem, it.Quantity, it.MinStock, it.StockStatus())
	}
	return tw.Flush()
}
