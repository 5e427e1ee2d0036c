package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Locations(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	regions, err := pgSQL.Regions(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 4)
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	require.Equal(t, []string{"Arusha", "Dar es Salaam", "Dodoma", "Mwanza"}, names)
	dar := regions[1]

	t.Run("districts of a region", func(t *testing.T) {
		t.Parallel()

		districts, err := pgSQL.Districts(ctx, &dar.ID)
		require.NoError(t, err)
		require.Len(t, districts, 3)
		for _, d := range districts {
			require.Equal(t, dar.ID, d.RegionID)
			require.NotNil(t, d.Region)
			require.Equal(t, "Dar es Salaam", d.Region.Name)
		}
	})

	t.Run("all districts", func(t *testing.T) {
		t.Parallel()

		districts, err := pgSQL.Districts(ctx, nil)
		require.NoError(t, err)
		require.Len(t, districts, 6)
	})

	t.Run("councils carry the full chain", func(t *testing.T) {
		t.Parallel()

		councils, err := pgSQL.Councils(ctx, nil)
		require.NoError(t, err)
		require.Len(t, councils, 7)
		for _, c := range councils {
			require.NotNil(t, c.District)
			require.NotNil(t, c.District.Region)
			require.Equal(t, c.DistrictID, c.District.ID)
		}
	})

	t.Run("councils of a district", func(t *testing.T) {
		t.Parallel()

		ilala := councilByName(t, pgSQL, "Ilala CBD").District
		councils, err := pgSQL.Councils(ctx, &ilala.ID)
		require.NoError(t, err)
		require.Len(t, councils, 2)
		require.Equal(t, "Ilala CBD", councils[0].Name)
		require.Equal(t, "Kariakoo", councils[1].Name)
	})

	t.Run("council by id", func(t *testing.T) {
		t.Parallel()

		msasani := councilByName(t, pgSQL, "Msasani")
		res, err := pgSQL.CouncilByID(ctx, msasani.ID)
		require.NoError(t, err)
		require.Equal(t, "Msasani", res.Name)
		require.Equal(t, "Kinondoni", res.District.Name)
		require.Equal(t, "Dar es Salaam", res.District.Region.Name)

		res, err = pgSQL.CouncilByID(ctx, -1)
		require.NoError(t, err)
		require.Nil(t, res)
	})
}
