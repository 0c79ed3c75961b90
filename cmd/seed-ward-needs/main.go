// seed-ward-needs populates the ward_needs table out-of-band: demo rows by
// default, or an import from a published needs-assessment site with -from-url.
package main

import (
	"context"
	"flag"

	"github.com/sanzad/sanzad-backend/internal/pkg/config"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
	"github.com/sanzad/sanzad-backend/internal/pkg/store/xpgx"
	"github.com/sanzad/sanzad-backend/internal/service/wardneed"
	"github.com/spf13/viper"
)

func main() {
	fromURL := flag.String("from-url", "", "import ward needs from this index page instead of seeding demo rows")
	flag.Parse()

	config.Load()

	ctx := context.Background()
	defer logger.Sync()

	pool, err := xpgx.Dial(ctx, viper.GetString(constants.ViperKeyDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)
	if err := st.Bootstrap(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	svc := wardneed.NewService(st)

	if *fromURL != "" {
		imported, err := svc.ImportFromURL(ctx, *fromURL)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		logger.Infof(ctx, "imported %d ward needs from %s", len(imported), *fromURL)
		return
	}

	if err := svc.Seed(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Infof(ctx, "seeded ward_needs demo data")
}
