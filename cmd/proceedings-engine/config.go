// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// bindFlag makes flag the highest-precedence source for the viper key.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		fmt.Fprintf(os.Stderr, "warning: binding --%s: %v\n", flag.Name, err)
	}
}

func extractionConfig() types.ExtractionConfig {
	return types.ExtractionConfig{
		TitlesFile:      viper.GetString("extraction.titles_file"),
		ProceedingsFile: viper.GetString("extraction.proceedings_file"),
		PagePolicy:      viper.GetString("extraction.page_policy"),
		DropFinal:       viper.GetBool("extraction.drop_final"),
		Output:          viper.GetString("extraction.output"),
		Format:          viper.GetString("extraction.format"),
	}
}

func titlesConfig() types.TitlesConfig {
	return types.TitlesConfig{
		ContentsFile: viper.GetString("titles.contents_file"),
		Output:       viper.GetString("titles.output"),
	}
}

func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		OutputDir: viper.GetString("conversion.output_dir"),
	}
}

func catalogConfig() types.CatalogConfig {
	return types.CatalogConfig{
		CatalogDir: viper.GetString("catalog.catalog_dir"),
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}
