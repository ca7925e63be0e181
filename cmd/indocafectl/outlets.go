package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"indocafe/internal/client"
	"indocafe/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newOutletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outlets",
		Short: "Manage outlets",
	}
	cmd.AddCommand(newOutletsListCmd(), newOutletsCreateCmd(), newOutletsNearbyCmd(), newOutletsQRCmd())

	return cmd
}

func newOutletsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every outlet",
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

			outlets, err := c.ListOutlets(ctx, cred)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd, outlets)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tACTIVE")
			for _, outlet := range outlets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", outlet.ID, outlet.Name, outlet.Type, outlet.IsActive)
			}

			return w.Flush()
		},
	}
}

func newOutletsCreateCmd() *cobra.Command {
	var (
		req        client.CreateOutletRequest
		lat, lng   float64
		outletType string
		inactive   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an outlet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Type = entity.OutletType(outletType)
			if !req.Type.IsValid() {
				return errors.Errorf("invalid outlet type %q", outletType)
			}
			req.Location = client.PointAt(lat, lng)
			if inactive {
				active := false
				req.IsActive = &active
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

			outlet, err := c.CreateOutlet(ctx, cred, &req)
			if err != nil {
				return err
			}

			return printJSON(cmd, outlet)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "outlet name")
	cmd.Flags().StringVar(&req.Address, "address", "", "street address")
	cmd.Flags().StringVar(&outletType, "type", string(entity.OutletTypeDineIn), "dine_in, cloud_kitchen or hybrid")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "contact phone number")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "register the outlet as inactive")
	for _, name := range []string{"name", "address", "phone", "lat", "lng"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newOutletsNearbyCmd() *cobra.Command {
	var lat, lng, radius float64

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Find active outlets around a point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			results, err := c.NearbyOutlets(ctx, lat, lng, radius)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd, results)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDISTANCE (KM)")
			for _, result := range results {
				fmt.Fprintf(w, "%s\t%s\t%.2f\n", result.Outlet.ID, result.Outlet.Name, result.DistanceKm)
			}

			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	cmd.Flags().Float64Var(&radius, "radius", 0, "search radius in km (server default when unset)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func newOutletsQRCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "qr <outlet-id>",
		Short: "Download the menu QR code of an outlet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			png, err := c.OutletQRCode(ctx, cred, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".png"
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return errors.WithStack(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "QR code written to", out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default <outlet-id>.png)")

	return cmd
}
