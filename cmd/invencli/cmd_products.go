package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"invencost/internal/dto"
	"invencost/internal/listview"
	"invencost/internal/recipe"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	productSearch string
	productSort   string
	productDesc   bool
	productPage   int

	productCreateDesc  string
	productCreateStock int
	productCreateLines []string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Lista los productos con coste y margen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := api.Products(cmd.Context())
		if err != nil {
			return err
		}

		view := listview.New(products)
		view.SetSearchTerm(productSearch)
		if productSort != "" {
			field := listview.SortField(productSort)
			switch field {
			case listview.SortByID, listview.SortByName, listview.SortByPrice, listview.SortByStock:
			default:
				return fmt.Errorf("campo de orden desconocido: %s", productSort)
			}
			view.ToggleSort(field)
			if productDesc {
				view.ToggleSort(field)
			}
		}
		if productPage > 1 && !view.GoToPage(productPage) {
			return fmt.Errorf("página %d fuera de rango (total: %d)", productPage, view.TotalPages())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tSTOCK\tCOSTE\tMARGEN")
		for _, p := range view.Page() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
				p.ID, p.Name, p.Price.StringFixed(2), p.Stock,
				derived(p.CalculatedCost), derived(p.ProfitMargin))
		}
		w.Flush()
		fmt.Printf("Página %d de %d (%d productos)\n", view.CurrentPage(), view.TotalPages(), len(view.Filtered()))
		return nil
	},
}

var productShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Muestra un producto con su receta",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := api.Product(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (id %d)\n", p.Name, p.ID)
		if p.Description != nil {
			fmt.Println(*p.Description)
		}
		fmt.Printf("Precio: %s  Stock: %d\n", p.Price.StringFixed(2), p.Stock)
		fmt.Printf("Coste: %s  Margen: %s\n", derived(p.CalculatedCost), derived(p.ProfitMargin))
		if len(p.Recipes) > 0 {
			fmt.Println("\nReceta:")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, line := range p.Recipes {
				fmt.Fprintf(w, "  %s\t%s %s\t%s €/u\n",
					line.Ingredient.Name, line.Quantity.String(), line.Ingredient.Unit,
					line.Ingredient.CostPrice.StringFixed(2))
			}
			w.Flush()
		}
		return nil
	},
}

var productCreateCmd = &cobra.Command{
	Use:   "create <nombre> <precio>",
	Short: "Crea un producto componiendo su receta",
	Long: `Crea un producto. La receta se compone con --line id:cantidad (repetible);
las líneas se validan contra el catálogo antes de enviar nada al servidor y
se muestra una estimación de coste y margen.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("precio inválido: %s", args[1])
		}

		catalog, err := api.Ingredients(cmd.Context())
		if err != nil {
			return err
		}
		editor := recipe.NewEditor(catalog)
		for _, raw := range productCreateLines {
			id, qty, err := parseRecipeLine(raw)
			if err != nil {
				return err
			}
			if err := editor.AddLine(id, qty); err != nil {
				return fmt.Errorf("línea %q: %w", raw, err)
			}
		}

		fmt.Printf("Coste estimado: %s €  Margen estimado: %s €\n",
			editor.TotalCost().StringFixed(2), editor.EstimatedMargin(price).StringFixed(2))

		req := dto.CreateProductRequest{
			Name:  args[0],
			Price: price,
			Stock: productCreateStock,
		}
		if productCreateDesc != "" {
			req.Description = &productCreateDesc
		}
		for _, line := range editor.Lines() {
			req.Recipe = append(req.Recipe, dto.RecipeLineRequest{
				IngredientID: line.IngredientID,
				Quantity:     line.Quantity,
			})
		}

		p, err := api.CreateProduct(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Producto creado con id %d (coste %s, margen %s)\n",
			p.ID, derived(p.CalculatedCost), derived(p.ProfitMargin))
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un producto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := api.DeleteProduct(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Producto eliminado")
		return nil
	},
}

func derived(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(2)
}

// parseRecipeLine parses one --line value in the form "ingredientId:cantidad".
func parseRecipeLine(raw string) (uint, decimal.Decimal, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, decimal.Zero, fmt.Errorf("línea inválida %q, use id:cantidad", raw)
	}
	id, err := parseID(parts[0])
	if err != nil {
		return 0, decimal.Zero, err
	}
	qty, err := decimal.NewFromString(parts[1])
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("cantidad inválida: %s", parts[1])
	}
	return id, qty, nil
}

func init() {
	productsCmd.Flags().StringVar(&productSearch, "search", "", "filtra por nombre o descripción")
	productsCmd.Flags().StringVar(&productSort, "sort", "", "ordena por: id, name, price, stock")
	productsCmd.Flags().BoolVar(&productDesc, "desc", false, "orden descendente")
	productsCmd.Flags().IntVar(&productPage, "page", 1, "página a mostrar")

	productCreateCmd.Flags().StringVar(&productCreateDesc, "desc", "", "descripción del producto")
	productCreateCmd.Flags().IntVar(&productCreateStock, "stock", 0, "unidades en stock")
	productCreateCmd.Flags().StringArrayVar(&productCreateLines, "line", nil, "línea de receta id:cantidad (repetible)")

	productsCmd.AddCommand(productShowCmd, productCreateCmd, productDeleteCmd)
}
