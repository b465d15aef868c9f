package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	img "github.com/aswenson/schemer/image"
	"github.com/aswenson/schemer/palette"
	"github.com/aswenson/schemer/scheme"
)

var (
	imagePath   string
	name        string
	slug        string
	author      string
	description string
	systemFlag  string
	variantFlag string
	outFile     string
	verbose     bool

	sampleStride  int
	quantBits     int
	maxColors     int
	minSeparation float64
	useKMeans     bool
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a scheme from an image",
	Long:  `Create a Base16 or Base24 color scheme from an image and print or save it in the tinted-theming format.`,
	Run: func(cmd *cobra.Command, args []string) {
		setCreateDefaults()

		system, e := scheme.ParseSystem(systemFlag)
		if e != nil {
			log.Fatal(e)
		}
		variant, e := scheme.ParseVariant(variantFlag)
		if e != nil {
			log.Fatal(e)
		}

		method := palette.MethodGreedy
		if useKMeans {
			method = palette.MethodKMeans
		}

		s, e := scheme.CreateFromImage(scheme.Params{
			Path:        imagePath,
			Name:        name,
			Slug:        slug,
			Author:      author,
			Description: description,
			System:      system,
			Variant:     variant,
			Verbose:     verbose,
			Sample: img.SampleOptions{
				Stride:    sampleStride,
				QuantBits: quantBits,
				MaxColors: maxColors,
			},
			Reduce: palette.ReduceOptions{
				Method:        method,
				MinSeparation: minSeparation,
			},
		})
		if e != nil {
			log.Fatal(e)
		}

		out, e := s.Render()
		if e != nil {
			log.Fatal(e)
		}

		if outFile == "" {
			fmt.Print(out)
			return
		}
		if e := os.WriteFile(outFile, []byte(out), 0644); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&imagePath, "image", "i", "", "path to the source image")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "scheme name")
	createCmd.Flags().StringVar(&slug, "slug", "", "scheme slug (default: slugified name)")
	createCmd.Flags().StringVarP(&author, "author", "a", "", "scheme author")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "scheme description")
	createCmd.Flags().StringVarP(&systemFlag, "system", "s", "base16", "scheme system (base16 or base24)")
	createCmd.Flags().StringVar(&variantFlag, "variant", "dark", "scheme variant (dark or light)")
	createCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default: stdout)")
	createCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a per-slot preview and separation diagnostics")

	createCmd.Flags().IntVar(&sampleStride, "stride", 0, "sample every n-th pixel")
	createCmd.Flags().IntVar(&quantBits, "quant-bits", 0, "bits per channel kept while counting colors")
	createCmd.Flags().IntVar(&maxColors, "max-colors", 0, "pre-quantize the image to at most this many colors")
	createCmd.Flags().Float64Var(&minSeparation, "min-separation", 0, "minimum channel-space distance between scheme colors")
	createCmd.Flags().BoolVar(&useKMeans, "kmeans", false, "cluster candidates with k-means before selection")

	createCmd.MarkFlagRequired("image")
}

func setCreateDefaults() {
	if author == "" {
		author = viper.GetString("author")
	}
	if name == "" {
		name = viper.GetString("name")
	}
}
