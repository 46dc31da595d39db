package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Muestra las métricas del inventario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := api.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Productos:            %d\n", s.Metrics.TotalProducts)
		fmt.Printf("Valor total:          %s €\n", s.Metrics.TotalValue.StringFixed(2))
		fmt.Printf("Margen medio:         %s €\n", s.Metrics.AverageMargin.StringFixed(2))
		fmt.Printf("Con margen negativo:  %d\n", s.Metrics.NegativeMarginProducts)
		fmt.Printf("Ingredientes:         %d\n", s.Metrics.TotalIngredients)
		fmt.Printf("Con stock bajo:       %d\n", s.Metrics.LowStockIngredients)

		if len(s.NegativeMargin) > 0 {
			fmt.Println("\nProductos con margen negativo:")
			for _, p := range s.NegativeMargin {
				fmt.Printf("  - %s (margen %s €)\n", p.Name, p.ProfitMargin.StringFixed(2))
			}
		}
		if len(s.Recent) > 0 {
			fmt.Println("\nÚltimos productos:")
			for _, p := range s.Recent {
				fmt.Printf("  - %s\n", p.Name)
			}
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga el catálogo de demostración en el servidor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Seed(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Datos inicializados correctamente")
		return nil
	},
}
