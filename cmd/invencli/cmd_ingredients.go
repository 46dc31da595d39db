package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"invencost/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Lista los ingredientes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ingredients, err := api.Ingredients(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tCOSTE\tSTOCK\tUNIDAD")
		for _, ing := range ingredients {
			marker := ""
			if ing.LowStock() {
				marker = "  ⚠ stock bajo"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s%s\n",
				ing.ID, ing.Name, ing.CostPrice.StringFixed(2),
				ing.CurrentStock.String(), ing.Unit, marker)
		}
		return w.Flush()
	},
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add <nombre> <coste> <stock> <unidad>",
	Short: "Crea un ingrediente",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cost, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("coste inválido: %s", args[1])
		}
		stock, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("stock inválido: %s", args[2])
		}
		ing, err := api.CreateIngredient(cmd.Context(), dto.CreateIngredientRequest{
			Name:         args[0],
			CostPrice:    cost,
			CurrentStock: stock,
			Unit:         args[3],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Ingrediente creado con id %d\n", ing.ID)
		return nil
	},
}

var ingredientUpdateCmd = &cobra.Command{
	Use:   "update <id> <nombre> <coste> <stock> <unidad>",
	Short: "Actualiza un ingrediente",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cost, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("coste inválido: %s", args[2])
		}
		stock, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("stock inválido: %s", args[3])
		}
		ing, err := api.UpdateIngredient(cmd.Context(), id, dto.UpdateIngredientRequest{
			Name:         args[1],
			CostPrice:    cost,
			CurrentStock: stock,
			Unit:         args[4],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Ingrediente %d actualizado\n", ing.ID)
		return nil
	},
}

var ingredientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un ingrediente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := api.DeleteIngredient(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Ingrediente eliminado")
		return nil
	},
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("identificador inválido: %s", raw)
	}
	return uint(id), nil
}

func init() {
	ingredientsCmd.AddCommand(ingredientAddCmd, ingredientUpdateCmd, ingredientDeleteCmd)
}
