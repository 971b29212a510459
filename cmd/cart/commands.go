package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fashionhive/storefront/internal/cart"
)

// variantFlags identify the line item a command targets
type variantFlags struct {
	size  string
	color string
}

func (v *variantFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&v.size, "size", "s", "", "Size of the product variant")
	cmd.Flags().StringVarP(&v.color, "color", "c", "", "Color of the product variant")
}

func newAddCmd(current func() *session) *cobra.Command {
	var (
		variant  variantFlags
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product variant to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity < 1 {
				return fmt.Errorf("quantity must be at least 1 (got %d)", quantity)
			}

			s := current()
			product, err := s.catalog.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch product %s: %w", args[0], err)
			}

			size := strings.TrimSpace(variant.size)
			if size != "" && !product.OffersSize(size) {
				return fmt.Errorf("size %q is not offered for %s (choose from %s)",
					size, product.Name, strings.Join(product.Sizes, ", "))
			}

			totals, err := s.engine.AddItem(*product, quantity, size, variant.color)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Added %d x %s (%s) from %s\n", quantity, product.Name, size, product.BrandName())
			fmt.Fprintf(s.out, "Cart: %d items, %s\n", totals.TotalItems, formatAmount(totals.TotalPrice))
			return nil
		},
	}
	variant.register(cmd)
	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "Quantity to add")
	return cmd
}

func newUpdateCmd(current func() *session) *cobra.Command {
	var variant variantFlags

	cmd := &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a line item (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}

			s := current()
			s.engine.UpdateQuantity(args[0], variant.size, variant.color, quantity)
			fmt.Fprintf(s.out, "Cart: %d items, %s\n", s.engine.TotalItems(), formatAmount(s.engine.TotalPrice()))
			return nil
		},
	}
	variant.register(cmd)
	return cmd
}

func newRemoveCmd(current func() *session) *cobra.Command {
	var variant variantFlags

	cmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			s.engine.RemoveItem(args[0], variant.size, variant.color)
			fmt.Fprintf(s.out, "Cart: %d items, %s\n", s.engine.TotalItems(), formatAmount(s.engine.TotalPrice()))
			return nil
		},
	}
	variant.register(cmd)
	return cmd
}

func newClearCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			s.engine.ClearCart()
			fmt.Fprintln(s.out, "Cart cleared")
			return nil
		},
	}
}

func newClearBrandCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-brand <brand>",
		Short: "Remove every item of one brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			s.engine.ClearBrand(args[0])
			fmt.Fprintf(s.out, "Removed %s items. Cart: %d items, %s\n",
				args[0], s.engine.TotalItems(), formatAmount(s.engine.TotalPrice()))
			return nil
		},
	}
}

func newShowCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart grouped by brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			groups := s.engine.BrandGroups()
			if len(groups) == 0 {
				fmt.Fprintln(s.out, "Your cart is empty")
				return nil
			}

			w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t\t\t\t\n", g.Brand)
				for _, item := range g.Items {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%d x %s\t%s\n",
						item.Product.Name,
						item.Size,
						item.Color,
						item.Quantity,
						formatAmount(item.NumericPrice),
						formatAmount(item.Subtotal()),
					)
				}
				fmt.Fprintf(w, "  Subtotal (%d items)\t\t\t\t%s\n", g.TotalItems, formatAmount(g.Total))
			}
			fmt.Fprintf(w, "Total (%d items)\t\t\t\t%s\n", s.engine.TotalItems(), formatAmount(s.engine.TotalPrice()))
			return w.Flush()
		},
	}
}

func newCheckoutCmd(current func() *session) *cobra.Command {
	var info cart.DeliveryInfo

	cmd := &cobra.Command{
		Use:   "checkout <brand>",
		Short: "Place a simulated order for one brand's items",
		Long: `Place a simulated order for one brand's items.

No order is sent anywhere: the delivery details are validated, a receipt is
printed and the brand's items are removed from the cart.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			receipt, err := cart.Checkout(s.engine, args[0], info)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "✅ Order placed with %s\n", receipt.Brand)
			fmt.Fprintf(s.out, "Reference: %s\n", receipt.Reference)
			fmt.Fprintf(s.out, "Items: %d\n", receipt.TotalItems)
			fmt.Fprintf(s.out, "Total: %s\n", formatAmount(receipt.Total))
			fmt.Fprintf(s.out, "Deliver to: %s, %s, %s %s\n",
				receipt.Delivery.FullName, receipt.Delivery.Address, receipt.Delivery.City, receipt.Delivery.PostalCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&info.FullName, "full-name", "", "Recipient name")
	cmd.Flags().StringVar(&info.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&info.Phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&info.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&info.City, "city", "", "City")
	cmd.Flags().StringVar(&info.PostalCode, "postal-code", "", "Postal code")
	cmd.Flags().StringVar(&info.Notes, "notes", "", "Delivery notes")
	return cmd
}

// formatAmount renders a rupee amount the way the storefronts print prices
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "00" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return "Rs." + b.String()
}
