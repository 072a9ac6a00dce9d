package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/wardrobe-service/internal/config"
	"github.com/pribylovaa/wardrobe-service/internal/models"
	"github.com/pribylovaa/wardrobe-service/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты пакета postgres:
// - поднимают PostgreSQL через testcontainers-go (postgres:16-alpine);
// - применяют миграции из ./migrations и засевают справочники и каталог;
// - проверяют пользователей, онбординг (атомарность, замену наборов),
//   гардероб, поиск варианта и замену строки гардероба.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

const testSchema = "capsulify_live"

// Справочники и каталог для тестов.
// Тип фигуры 1 -> варианты {1, 3}, 2 -> {2, 4}, 3 -> {1, 2, 3}.
const seedSQL = `
INSERT INTO body_shapes (id, name) VALUES (1, 'Hourglass'), (2, 'Pear'), (3, 'Inverted Triangle');
INSERT INTO age_groups (id, name) VALUES (1, '18-24'), (2, '25-34');
INSERT INTO heights (id, name) VALUES (1, 'Petite'), (2, 'Tall');
INSERT INTO personal_styles (id, name) VALUES (1, 'Classic'), (2, 'Boho');
INSERT INTO body_parts (id, name) VALUES (1, 'Arms'), (2, 'Legs'), (3, 'Waist'), (4, 'Shoulders');
INSERT INTO occasions (id, key, name) VALUES (1, 'work', 'Work'), (2, 'casual', 'Casual'), (3, 'date', 'Date night');

INSERT INTO clothing_items (id, category_id, subcategory_id, colour_type_id) VALUES
	(1, 1, 10, 100),
	(2, 2, 20, 200);

INSERT INTO clothing_variants (id, clothing_item_id, name, top_sleeve_type_id, blouse_sleeve_type_id, neckline_id, bottom_cut_id, skirt_cut_id, image_file_name) VALUES
	(1, 1, 'Tee', 1, NULL, 1, NULL, NULL, 'tee.png'),
	(2, 1, 'Blouse', NULL, 2, 2, NULL, NULL, 'blouse.png'),
	(3, 2, 'Jeans', NULL, NULL, NULL, 3, NULL, 'jeans.png'),
	(4, 2, 'Skirt', NULL, NULL, NULL, NULL, 4, 'skirt.png');

INSERT INTO default_clothing_variants (body_shape_id, clothing_variant_id) VALUES
	(1, 1), (1, 3),
	(2, 2), (2, 4),
	(3, 1), (3, 2), (3, 3);
`

// repoRootFromThisFile - корень репозитория относительно файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration - читает SQL-миграцию из ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres - поднимает PostgreSQL, применяет миграции и сиды,
// возвращает хранилище и функцию очистки.
// Без GO_TEST_INTEGRATION тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting postgres container with image=%q", req.Image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_wardrobe.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, config.PostgresConfig{URL: dsn, Schema: testSchema, MaxConns: 4})
	require.NoError(t, err)

	_, err = st.db.Exec(ctx, seedSQL)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// countRows - число строк по запросу вида SELECT count(*) ... .
func countRows(t *testing.T, st *Storage, q string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, st.db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

// createUser - регистрирует пользователя с производными от externalID полями.
func createUser(t *testing.T, st *Storage, externalID string) int64 {
	t.Helper()
	id, err := st.CreateUser(context.Background(), &models.User{
		ExternalID: externalID,
		Name:       "Name " + externalID,
		Username:   "user_" + externalID,
		Email:      externalID + "@example.com",
	})
	require.NoError(t, err)
	require.Positive(t, id)
	return id
}

func onboardingData(bodyShapeID int) models.OnboardingData {
	return models.OnboardingData{
		AgeGroupID:       1,
		BodyShapeID:      bodyShapeID,
		HeightID:         2,
		PersonalStyleID:  1,
		Location:         "Berlin",
		Goal:             "capsule",
		Frustration:      "too many clothes",
		FavParts:         []int{1, 2},
		LeastFavParts:    []int{3},
		MonthlyOccasions: map[string]int{"work": 20, "casual": 6, "date": 0},
	}
}

// partIDs - список id частей тела по запросу с одним столбцом.
func partIDs(t *testing.T, st *Storage, q string, userID int64) []int {
	t.Helper()
	rows, err := st.db.Query(context.Background(), q, userID)
	require.NoError(t, err)
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	require.NoError(t, err)
	return ids
}

// occasionCounts - сохранённые поводы пользователя: key -> count.
func occasionCounts(t *testing.T, st *Storage, userID int64) map[string]int {
	t.Helper()
	rows, err := st.db.Query(context.Background(), `
		SELECT o.key, umo.count
		FROM user_monthly_occasions umo
		JOIN occasions o ON o.id = umo.occasion_id
		WHERE umo.user_id = $1`, userID)
	require.NoError(t, err)
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		require.NoError(t, rows.Scan(&key, &count))
		out[key] = count
	}
	require.NoError(t, rows.Err())
	return out
}

func wardrobeVariantIDs(t *testing.T, st *Storage, userID int64) []int64 {
	t.Helper()
	items, err := st.WardrobeByUserID(context.Background(), userID)
	require.NoError(t, err)

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ClothingVariantID)
	}
	return ids
}

func TestIntegration_CreateUser_And_UserByExternalID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "clerk_1")

	got, err := st.UserByExternalID(context.Background(), "clerk_1")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "clerk_1", got.ExternalID)
	require.Equal(t, "Name clerk_1", got.Name)
	require.Equal(t, "user_clerk_1", got.Username)
	require.Equal(t, "clerk_1@example.com", got.Email)
	require.Empty(t, got.Location)
	require.Nil(t, got.BodyShapeID)
	require.False(t, got.Onboarded)
	require.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)

	gotID, err := st.UserIDByExternalID(context.Background(), "clerk_1")
	require.NoError(t, err)
	require.Equal(t, id, gotID)
}

func TestIntegration_CreateUser_AlreadyExists(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	createUser(t, st, "dup")

	_, err := st.CreateUser(context.Background(), &models.User{ExternalID: "dup", Name: "x"})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_CreateUser_DuplicateUsernameOrEmail(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	createUser(t, st, "first")

	_, err := st.CreateUser(context.Background(), &models.User{
		ExternalID: "second",
		Name:       "Second",
		Username:   "user_second",
		Email:      "first@example.com",
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = st.CreateUser(context.Background(), &models.User{
		ExternalID: "third",
		Name:       "Third",
		Username:   "user_first",
		Email:      "third@example.com",
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	require.Equal(t, 1, countRows(t, st, `SELECT count(*) FROM users`))
}

func TestIntegration_UserByExternalID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByExternalID(context.Background(), "nobody")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserIDByExternalID(context.Background(), "nobody")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateUser_OverwritesProfileFields(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	createUser(t, st, "upd")

	err := st.UpdateUser(context.Background(), &models.User{
		ExternalID: "upd",
		Name:       "New",
		Username:   "new_user",
		Email:      "new@example.com",
	})
	require.NoError(t, err)

	got, err := st.UserByExternalID(context.Background(), "upd")
	require.NoError(t, err)
	require.Equal(t, "New", got.Name)
	require.Equal(t, "new_user", got.Username)
	require.Equal(t, "new@example.com", got.Email)

	// Отсутствующий пользователь - не ошибка.
	require.NoError(t, st.UpdateUser(context.Background(), &models.User{ExternalID: "ghost"}))
}

func TestIntegration_DeleteUser_CascadesDependentRows(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "del")
	_, err := st.SaveOnboarding(context.Background(), "del", onboardingData(1))
	require.NoError(t, err)

	require.NoError(t, st.DeleteUser(context.Background(), "del"))

	_, err = st.UserByExternalID(context.Background(), "del")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Zero(t, countRows(t, st, `SELECT count(*) FROM user_clothing_variants WHERE user_id = $1`, id))
	require.Zero(t, countRows(t, st, `SELECT count(*) FROM user_fav_parts WHERE user_id = $1`, id))
	require.Zero(t, countRows(t, st, `SELECT count(*) FROM user_monthly_occasions WHERE user_id = $1`, id))
}

func TestIntegration_SaveOnboarding_FillsProfileAndDefaultWardrobe(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "onb")

	userID, err := st.SaveOnboarding(context.Background(), "onb", onboardingData(1))
	require.NoError(t, err)
	require.Equal(t, id, userID)

	got, err := st.UserByExternalID(context.Background(), "onb")
	require.NoError(t, err)
	require.True(t, got.Onboarded)
	require.Equal(t, "Berlin", got.Location)
	require.Equal(t, "capsule", got.Goal)
	require.Equal(t, "too many clothes", got.Frustration)
	require.NotNil(t, got.BodyShapeID)
	require.Equal(t, 1, *got.BodyShapeID)
	require.Equal(t, 2, *got.HeightID)

	require.Equal(t, []int64{1, 3}, wardrobeVariantIDs(t, st, userID))

	require.Equal(t, 2, countRows(t, st, `SELECT count(*) FROM user_fav_parts WHERE user_id = $1`, userID))
	require.Equal(t, 1, countRows(t, st, `SELECT count(*) FROM user_least_fav_parts WHERE user_id = $1`, userID))
	// date с count = 0 не сохраняется.
	require.Equal(t, 2, countRows(t, st, `SELECT count(*) FROM user_monthly_occasions WHERE user_id = $1`, userID))
	require.Equal(t, 20, countRows(t, st, `
		SELECT umo.count FROM user_monthly_occasions umo
		JOIN occasions o ON o.id = umo.occasion_id
		WHERE umo.user_id = $1 AND o.key = 'work'`, userID))
}

func TestIntegration_SaveOnboarding_SecondSaveReplacesSets(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	createUser(t, st, "twice")

	first := onboardingData(1)
	userID, err := st.SaveOnboarding(context.Background(), "twice", first)
	require.NoError(t, err)

	second := onboardingData(2)
	second.FavParts = []int{4}
	second.LeastFavParts = nil
	second.MonthlyOccasions = map[string]int{"date": 2}
	_, err = st.SaveOnboarding(context.Background(), "twice", second)
	require.NoError(t, err)

	var favPart int
	require.NoError(t, st.db.QueryRow(context.Background(),
		`SELECT fav_part_id FROM user_fav_parts WHERE user_id = $1`, userID).Scan(&favPart))
	require.Equal(t, 4, favPart)
	require.Equal(t, 1, countRows(t, st, `SELECT count(*) FROM user_fav_parts WHERE user_id = $1`, userID))
	require.Zero(t, countRows(t, st, `SELECT count(*) FROM user_least_fav_parts WHERE user_id = $1`, userID))
	require.Equal(t, 1, countRows(t, st, `SELECT count(*) FROM user_monthly_occasions WHERE user_id = $1`, userID))

	require.Equal(t, []int64{2, 4}, wardrobeVariantIDs(t, st, userID))
}

func TestIntegration_SaveOnboarding_UnknownOccasion_RollsBack(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "rollback")

	// Первое сохранение успешно: дальше проверяем, что неудачное его не стёрло.
	_, err := st.SaveOnboarding(context.Background(), "rollback", onboardingData(1))
	require.NoError(t, err)

	failing := onboardingData(2)
	failing.Location = "Paris"
	failing.FavParts = []int{4}
	failing.LeastFavParts = nil
	failing.MonthlyOccasions = map[string]int{"work": 3, "gala": 1}

	_, err = st.SaveOnboarding(context.Background(), "rollback", failing)
	require.ErrorIs(t, err, storage.ErrUnknownOccasion)

	got, err := st.UserByExternalID(context.Background(), "rollback")
	require.NoError(t, err)
	require.True(t, got.Onboarded)
	require.NotNil(t, got.BodyShapeID)
	require.Equal(t, 1, *got.BodyShapeID)
	require.Equal(t, "Berlin", got.Location)

	require.Equal(t, []int{1, 2}, partIDs(t, st, `SELECT fav_part_id FROM user_fav_parts WHERE user_id = $1 ORDER BY fav_part_id`, id))
	require.Equal(t, []int{3}, partIDs(t, st, `SELECT least_fav_part_id FROM user_least_fav_parts WHERE user_id = $1 ORDER BY least_fav_part_id`, id))
	require.Equal(t, map[string]int{"work": 20, "casual": 6}, occasionCounts(t, st, id))
	require.Equal(t, []int64{1, 3}, wardrobeVariantIDs(t, st, id))
}

func TestIntegration_SaveOnboarding_UnknownOccasion_FreshUserUntouched(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "fresh")

	data := onboardingData(1)
	data.MonthlyOccasions = map[string]int{"gala": 1}

	_, err := st.SaveOnboarding(context.Background(), "fresh", data)
	require.ErrorIs(t, err, storage.ErrUnknownOccasion)

	got, err := st.UserByExternalID(context.Background(), "fresh")
	require.NoError(t, err)
	require.False(t, got.Onboarded)
	require.Nil(t, got.BodyShapeID)
	require.Zero(t, countRows(t, st, `SELECT count(*) FROM user_fav_parts WHERE user_id = $1`, id))
	require.Zero(t, countRows(t, st, `SELECT count(*) FROM user_clothing_variants WHERE user_id = $1`, id))
}

func TestIntegration_SaveOnboarding_UserNotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.SaveOnboarding(context.Background(), "ghost", onboardingData(1))
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateBodyType_ReplacesWardrobe(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	createUser(t, st, "shape")
	userID, err := st.SaveOnboarding(context.Background(), "shape", onboardingData(1))
	require.NoError(t, err)

	gotID, err := st.UpdateBodyType(context.Background(), "shape", "Inverted Triangle")
	require.NoError(t, err)
	require.Equal(t, userID, gotID)

	got, err := st.UserByExternalID(context.Background(), "shape")
	require.NoError(t, err)
	require.Equal(t, 3, *got.BodyShapeID)
	require.True(t, got.Onboarded)

	require.Equal(t, []int64{1, 2, 3}, wardrobeVariantIDs(t, st, userID))
}

func TestIntegration_UpdateBodyType_Errors(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	createUser(t, st, "shape_err")

	_, err := st.UpdateBodyType(context.Background(), "shape_err", "Spoon")
	require.ErrorIs(t, err, storage.ErrUnknownBodyShape)

	_, err = st.UpdateBodyType(context.Background(), "ghost", "Pear")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_WardrobeByUserID_Empty(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "empty")

	items, err := st.WardrobeByUserID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestIntegration_WardrobeByUserID_JoinsCatalog(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	id := createUser(t, st, "join")
	require.NoError(t, st.CreateWardrobe(context.Background(), id, []int64{3, 1}))

	items, err := st.WardrobeByUserID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Порядок - по id строки гардероба, то есть порядку вставки.
	jeans := items[0]
	require.EqualValues(t, 3, jeans.ClothingVariantID)
	require.Equal(t, 2, jeans.CategoryID)
	require.Equal(t, 20, *jeans.SubcategoryID)
	require.Equal(t, 200, *jeans.ColourTypeID)
	require.Equal(t, "Jeans", jeans.Name)
	require.Equal(t, 3, *jeans.BottomCutID)
	require.Nil(t, jeans.SkirtCutID)
	require.Equal(t, "jeans.png", jeans.ImageFileName)

	tee := items[1]
	require.EqualValues(t, 1, tee.ClothingVariantID)
	require.Equal(t, 1, tee.CategoryID)
	require.Equal(t, 1, *tee.TopSleeveTypeID)
	require.Less(t, jeans.ID, tee.ID)
}

func TestIntegration_DefaultVariantIDs_And_CreateWardrobe(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ids, err := st.DefaultVariantIDs(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)

	none, err := st.DefaultVariantIDs(context.Background(), 99)
	require.NoError(t, err)
	require.Empty(t, none)

	id := createUser(t, st, "cw")
	require.NoError(t, st.CreateWardrobe(context.Background(), id, ids))
	require.Equal(t, []int64{1, 2, 3}, wardrobeVariantIDs(t, st, id))

	// Пустой список - no-op.
	require.NoError(t, st.CreateWardrobe(context.Background(), id, nil))
	require.Equal(t, 3, countRows(t, st, `SELECT count(*) FROM user_clothing_variants WHERE user_id = $1`, id))

	err = st.CreateWardrobe(context.Background(), 987654, ids)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_FindClothingVariant(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	first, err := st.FindClothingVariant(ctx, models.VariantFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 1, first.ID)
	require.Equal(t, "Tee", first.Name)
	require.Equal(t, "tee.png", first.ImageFileName)

	jeans, err := st.FindClothingVariant(ctx, models.VariantFilter{BottomCutID: ptr(3)})
	require.NoError(t, err)
	require.EqualValues(t, 3, jeans.ID)

	skirt, err := st.FindClothingVariant(ctx, models.VariantFilter{ColourTypeID: ptr(200), SkirtCutID: ptr(4)})
	require.NoError(t, err)
	require.EqualValues(t, 4, skirt.ID)

	blouse, err := st.FindClothingVariant(ctx, models.VariantFilter{NecklineID: ptr(2)})
	require.NoError(t, err)
	require.EqualValues(t, 2, blouse.ID)

	_, err = st.FindClothingVariant(ctx, models.VariantFilter{ColourTypeID: ptr(100), SkirtCutID: ptr(4)})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_SwapWardrobeVariant(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	id := createUser(t, st, "swap")
	require.NoError(t, st.CreateWardrobe(ctx, id, []int64{1, 1, 3}))

	row, err := st.SwapWardrobeVariant(ctx, id, 2, 1)
	require.NoError(t, err)
	require.Equal(t, id, row.UserID)
	require.EqualValues(t, 2, row.ClothingVariantID)

	// Заменена ровно одна строка из двух одинаковых, с наименьшим id.
	require.Equal(t, []int64{2, 1, 3}, wardrobeVariantIDs(t, st, id))

	_, err = st.SwapWardrobeVariant(ctx, id, 4, 99)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Equal(t, []int64{2, 1, 3}, wardrobeVariantIDs(t, st, id))
}

func TestIntegration_ContextDeadlineExceeded(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := st.UserByExternalID(ctx, "any")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), context.DeadlineExceeded.Error()))

	_, err = st.SaveOnboarding(ctx, "any", onboardingData(1))
	require.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
