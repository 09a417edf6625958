package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appversion = "0.1.0"

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lspart",
		Short: "Inspect MBR and GPT partition tables",
		Long: `lspart decodes MBR and GPT partition tables from block devices or
disk images and prints a normalized view of every partition it finds.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(viper.GetBool("debug"), viper.GetBool("quiet"), viper.GetBool("no-color"))
		},
	}
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().Bool("quiet", false, "Only log errors")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	_ = viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", cmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("no-color", cmd.PersistentFlags().Lookup("no-color"))
	viper.SetEnvPrefix("LSPART")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewListCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "list [DEVICE...]",
		Short: "List the partitions of one or more devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			hexdump, _ := cmd.Flags().GetBool("hexdump")
			maxEntries, _ := cmd.Flags().GetUint32("max-entries")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			devices := args
			if all {
				for _, d := range getDiskListData() {
					devices = append(devices, d.Path)
				}
			}
			if len(devices) == 0 {
				return fmt.Errorf("no devices given, pass device paths or use --all")
			}
			cmd.SilenceUsage = true

			for _, dev := range devices {
				if err := checkForPerms(dev); err != nil {
					return err
				}
			}

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			layouts, batchErr := analyzeBatch(ctx, devices, maxEntries)
			for _, layout := range layouts {
				if hexdump {
					if err := dumpBootRegion(os.Stdout, layout.Device, layout.Scheme); err != nil {
						return err
					}
				}
				if err := renderLayout(os.Stdout, layout); err != nil {
					return err
				}
			}
			return batchErr
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("all", false, "Inspect every disk found on the system")
	c.Flags().Bool("hexdump", false, "Dump the boot sectors before each partition table")
	c.Flags().Uint32("max-entries", defaultMaxGPTEntries, "Upper bound on GPT partition entries")
	c.Flags().Duration("timeout", 0, "Give up on a device after this long (0 disables)")
	return c
}

var _ = NewListCmd(rootCmd)

// dumpBootRegion hexdumps LBA 0, plus the GPT header sector when one is present.
func dumpBootRegion(w io.Writer, path string, scheme partitionScheme) error {
	f, err := openDevice(path)
	if err != nil {
		return err
	}
	defer f.Close()
	count := uint64(1)
	if scheme == schemeGPT {
		count = 2
	}
	return dumpSectors(w, newReaderAtSource(f), 0, count)
}

func NewDisksCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "disks",
		Args:  cobra.ExactArgs(0),
		Short: "Show the disks attached to this system",
		Run: func(cmd *cobra.Command, _ []string) {
			renderDisks(os.Stdout, getDiskListData())
		},
	}
	root.AddCommand(c)
	return c
}

var _ = NewDisksCmd(rootCmd)

func NewSectorsCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "sectors DEVICE",
		Args:  cobra.ExactArgs(1),
		Short: "Hexdump raw sectors from a device",
		RunE: func(cmd *cobra.Command, args []string) error {
			lba, _ := cmd.Flags().GetUint64("lba")
			count, _ := cmd.Flags().GetUint64("count")
			if err := checkForPerms(args[0]); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			f, err := openDevice(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return dumpSectors(os.Stdout, newReaderAtSource(f), lba, count)
		},
	}
	root.AddCommand(c)
	c.Flags().Uint64("lba", 0, "First sector to dump")
	c.Flags().Uint64("count", 1, "Number of sectors to dump")
	return c
}

var _ = NewSectorsCmd(rootCmd)

func NewImageCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "image DEVICE OUTPUT",
		Args:  cobra.ExactArgs(2),
		Short: "Image a device into a file, optionally compressed",
		RunE: func(cmd *cobra.Command, args []string) error {
			compression, _ := cmd.Flags().GetString("compression")
			cmd.SilenceUsage = true
			return imageDisk(context.Background(), args[0], args[1], compression)
		},
	}
	root.AddCommand(c)
	c.Flags().String("compression", "raw", "Compression to apply: raw, gzip, zlib, bzip2, snappy, s2, zstd or zip")
	return c
}

var _ = NewImageCmd(rootCmd)

func NewBrowseCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "browse",
		Args:  cobra.ExactArgs(0),
		Short: "Browse disks and their partitions interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			maxEntries, _ := cmd.Flags().GetUint32("max-entries")
			cmd.SilenceUsage = true
			return runTUI(maxEntries)
		},
	}
	root.AddCommand(c)
	c.Flags().Uint32("max-entries", defaultMaxGPTEntries, "Upper bound on GPT partition entries")
	return c
}

var _ = NewBrowseCmd(rootCmd)

func NewVersionCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Args:  cobra.ExactArgs(0),
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("lspart %s\n", appversion)
		},
	}
	root.AddCommand(c)
	return c
}

var _ = NewVersionCmd(rootCmd)

func main() {
	Execute()
}
