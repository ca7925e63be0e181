package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"indocafe/internal/client"
	"indocafe/internal/domain/entity"
	"indocafe/internal/util"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the catalog and outlet overrides",
	}
	cmd.AddCommand(newMenuListCmd(), newMenuShowCmd(), newMenuSetCmd(), newMenuCreateCmd(), newMenuUploadCmd())

	return cmd
}

func newMenuListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the chain catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cred, err := credential()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			items, err := c.ListCatalog(ctx, cred)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd, items)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tBASE PRICE\tVEG")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", item.ID, item.Name, item.Category, item.BasePrice.StringFixed(2), item.IsVeg)
			}

			return w.Flush()
		},
	}
}

func newMenuShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <outlet-id>",
		Short: "Show the effective menu of an outlet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			entries, err := c.GetEffectiveMenu(ctx, args[0])
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd, entries)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tORIGINAL\tAVAILABLE")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					entry.ID, entry.Name, entry.Price.StringFixed(2), entry.OriginalPrice.StringFixed(2), entry.IsAvailable)
			}

			return w.Flush()
		},
	}
}

func newMenuSetCmd() *cobra.Command {
	var (
		outletID   string
		available  bool
		price      string
		clearPrice bool
	)

	cmd := &cobra.Command{
		Use:   "set <item-id>",
		Short: "Override availability or price of an item at an outlet",
		Long: `Writes the override of one catalog item at an outlet. Only the given flags are changed.
Without --outlet the caller's primary outlet is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &client.UpdateItemStatusRequest{OutletID: outletID}
			if cmd.Flags().Changed("available") {
				req.IsAvailable = &available
			}

			switch {
			case clearPrice && price != "":
				return errors.New("--price and --clear-price are mutually exclusive")
			case clearPrice:
				req.CustomPrice = &entity.OptionalPrice{Set: true}
			case price != "":
				value, err := decimal.NewFromString(price)
				if err != nil {
					return errors.Wrapf(err, "invalid price %q", price)
				}
				p := entity.PriceOf(value)
				req.CustomPrice = &p
			}

			if req.IsAvailable == nil && req.CustomPrice == nil {
				return errors.New("nothing to change: pass --available, --price or --clear-price")
			}

			cred, err := credential()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			cfg, err := c.UpdateItemStatus(ctx, cred, args[0], req)
			if err != nil {
				return err
			}

			return printJSON(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&outletID, "outlet", "", "outlet id")
	cmd.Flags().BoolVar(&available, "available", true, "whether the item is orderable")
	cmd.Flags().StringVar(&price, "price", "", "custom price at this outlet")
	cmd.Flags().BoolVar(&clearPrice, "clear-price", false, "revert to the catalog base price")

	return cmd
}

func newMenuCreateCmd() *cobra.Command {
	var (
		req    client.CreateMenuItemRequest
		price  string
		pieces int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an item to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := decimal.NewFromString(price)
			if err != nil {
				return errors.Wrapf(err, "invalid price %q", price)
			}
			req.BasePrice = value
			if cmd.Flags().Changed("pieces") {
				req.Pieces = &pieces
			}

			cred, err := credential()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			item, err := c.CreateMenuItem(ctx, cred, &req)
			if err != nil {
				return err
			}

			return printJSON(cmd, item)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "item name")
	cmd.Flags().StringVar(&req.Description, "description", "", "item description")
	cmd.Flags().StringVar(&price, "price", "", "base price")
	cmd.Flags().StringVar(&req.Category, "category", string(entity.CategoryMains), "menu category")
	cmd.Flags().BoolVar(&req.IsVeg, "veg", false, "vegetarian item")
	cmd.Flags().IntVar(&pieces, "pieces", 0, "pieces per serving")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "comma separated tags")
	cmd.Flags().StringVar(&req.Image, "image", "", "image URL")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newMenuUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <image-file>",
		Short: "Upload a menu image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			contentType := mime.TypeByExtension(filepath.Ext(path))
			if contentType == "" {
				return errors.Errorf("cannot tell the image type of %s", path)
			}

			file, err := os.Open(path)
			if err != nil {
				return errors.WithStack(err)
			}
			defer file.Close()

			info, err := file.Stat()
			if err != nil {
				return errors.WithStack(err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Uploading %s (%s)\n", filepath.Base(path), util.FormatBytes(info.Size()))

			cred, err := credential()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			url, err := c.UploadMenuImage(ctx, cred, filepath.Base(path), contentType, file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)

			return nil
		},
	}
}
