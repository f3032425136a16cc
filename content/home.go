package content

import (
	"github.com/willyhardian/expressjstutorial/internal/core"
)

// Features is the homepage feature grid, in display order. Edit here and
// rebuild; there is no runtime mutation path.
var Features = []core.FeatureItem{
	{
		Title: "Solve the Chaos",
		Icon:  "/img/solve-the-chaos.svg",
		Description: "Stop stuffing routes, queries, and business rules into a single " +
			"file. A predictable project structure keeps every endpoint easy to find " +
			"and easy to change.",
	},
	{
		Title: "Separate Your Concerns",
		Icon:  "/img/separate-concerns.svg",
		Description: "Controllers handle HTTP while services own the business rules. " +
			"The database stays behind a repository you can swap or mock in tests.",
	},
	{
		Title: "Built on PostgreSQL",
		Icon:  "/img/postgresql-sequelize.svg",
		Description: "Every chapter runs against a <em>real</em> PostgreSQL database " +
			"through Sequelize, so what you practice here maps directly onto " +
			"production code.",
	},
}
