package application_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeshots/internal/application"
	"storeshots/internal/domain/entities"
	"storeshots/internal/infrastructure/filesystem"
	"storeshots/internal/infrastructure/i18n"
)

// templateDoc mimics an exported screenshot: the title also appears in an
// attribute, which must survive substitution.
func templateDoc(c entities.Caption) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg">
  <g inkscape:label="%[1]s">
    <text class="title">%[1]s</text>
    <text class="desc">%[2]s</text>
  </g>
</svg>
`, c.Title, c.Description)
}

func writeTemplates(t *testing.T, root string, anchors entities.LocaleEntry) {
	t.Helper()
	dir := filepath.Join(root, "en")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, tpl := range entities.Templates() {
		doc := templateDoc(anchors.CaptionFor(tpl))
		require.NoError(t, os.WriteFile(filepath.Join(dir, tpl.Filename()), []byte(doc), 0o644))
	}
}

func readFile(t *testing.T, path ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(data)
}

func setup(t *testing.T) (string, *i18n.Catalog, *application.RenderService) {
	t.Helper()
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	root := t.TempDir()
	writeTemplates(t, root, catalog.Anchors())
	svc := application.NewRenderService(catalog, filesystem.NewStore(root, "en"), nil)
	return root, catalog, svc
}

func TestRenderAllProducesSixDocumentsPerLocale(t *testing.T) {
	root, catalog, svc := setup(t)

	summary, err := svc.RenderAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Locales(), summary.Locales)
	assert.Equal(t, 6*len(catalog.Locales()), summary.Files)

	anchors := catalog.Anchors()
	for _, locale := range catalog.Locales() {
		entries, err := os.ReadDir(filepath.Join(root, locale))
		require.NoError(t, err)
		assert.Len(t, entries, 6, locale)

		entry, err := catalog.Entry(locale)
		require.NoError(t, err)
		for _, tpl := range entities.Templates() {
			from, to := anchors.CaptionFor(tpl), entry.CaptionFor(tpl)
			want := templateDoc(from)
			want = strings.ReplaceAll(want, ">"+from.Title+"<", ">"+to.Title+"<")
			want = strings.ReplaceAll(want, ">"+from.Description+"<", ">"+to.Description+"<")

			got := readFile(t, root, locale, tpl.Filename())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s/%s mismatch (-want +got):\n%s", locale, tpl.Filename(), diff)
			}
			assert.Contains(t, got, fmt.Sprintf(`inkscape:label="%s"`, from.Title))
		}
	}
}

func TestRenderKoreanPhoneFirstScreenshot(t *testing.T) {
	root, _, svc := setup(t)

	_, err := svc.RenderAll(context.Background())
	require.NoError(t, err)

	got := readFile(t, root, "ko", "1.svg")
	assert.Contains(t, got, ">WebView 테스터<")
	assert.Contains(t, got, ">WKWebView와 SafariVC를 바로 테스트하세요<")
	assert.NotContains(t, got, ">WebView Tester<")
}

func TestRenderTabletThirdScreenshotUsesOwnCopy(t *testing.T) {
	root, catalog, svc := setup(t)

	entry, err := catalog.Entry("en-GB")
	require.NoError(t, err)
	_, err = svc.RenderLocale(context.Background(), entry)
	require.NoError(t, err)

	phone := readFile(t, root, "en-GB", "3.svg")
	tablet := readFile(t, root, "en-GB", "ipad-3.svg")
	assert.NotEqual(t, phone, tablet)
	assert.Contains(t, phone, ">Customise Settings<")
	assert.Contains(t, phone, ">Fine-tune options for precise testing<")
	assert.Contains(t, tablet, ">WebView Capabilities<")
	assert.Contains(t, tablet, ">Check API support and device info<")
	assert.NotContains(t, tablet, ">Customise Settings<")
}

func TestRenderIsIdempotent(t *testing.T) {
	root, catalog, svc := setup(t)
	entry, err := catalog.Entry("de-DE")
	require.NoError(t, err)

	_, err = svc.RenderLocale(context.Background(), entry)
	require.NoError(t, err)
	first := map[string]string{}
	for _, tpl := range entities.Templates() {
		first[tpl.Filename()] = readFile(t, root, "de-DE", tpl.Filename())
	}

	files, err := svc.RenderLocale(context.Background(), entry)
	require.NoError(t, err)
	assert.Len(t, files, 6)
	for name, want := range first {
		assert.Equal(t, want, readFile(t, root, "de-DE", name), name)
	}
}

func TestRenderMissingAnchorCopiesDocument(t *testing.T) {
	root, catalog, svc := setup(t)
	doc := `<svg><text>Built-in DevTools</text><text>Something else</text></svg>`
	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "2.svg"), []byte(doc), 0o644))

	entry, err := catalog.Entry("fr-FR")
	require.NoError(t, err)
	files, err := svc.RenderLocale(context.Background(), entry)
	require.NoError(t, err)
	assert.Len(t, files, 6)

	assert.Equal(t,
		`<svg><text>Outils de développement intégrés</text><text>Something else</text></svg>`,
		readFile(t, root, "fr-FR", "2.svg"))

	blank := `<svg/>`
	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "ipad-1.svg"), []byte(blank), 0o644))
	_, err = svc.RenderLocale(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, blank, readFile(t, root, "fr-FR", "ipad-1.svg"))
}

func TestRenderAllStopsAtMissingTemplate(t *testing.T) {
	root, _, svc := setup(t)
	require.NoError(t, os.Remove(filepath.Join(root, "en", "ipad-3.svg")))

	summary, err := svc.RenderAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, strings.HasPrefix(err.Error(), "read template ipad-3.svg: open "), err.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), "ipad-3.svg"), err.Error())
	assert.Empty(t, summary.Locales)
	assert.Equal(t, 5, summary.Files)

	_, err = os.Stat(filepath.Join(root, "en-GB"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "rendering must stop at the failing locale")
}

// failingStore rejects writes for one locale.
type failingStore struct {
	*filesystem.Store
	locale string
}

var errDiskFull = errors.New("disk full")

func (s failingStore) WriteArtifact(locale, name string, data []byte) error {
	if locale == s.locale {
		return errDiskFull
	}
	return s.Store.WriteArtifact(locale, name, data)
}

func TestRenderAllKeepsEarlierLocalesOnFailure(t *testing.T) {
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	root := t.TempDir()
	writeTemplates(t, root, catalog.Anchors())
	store := failingStore{Store: filesystem.NewStore(root, "en"), locale: "ko"}
	svc := application.NewRenderService(catalog, store, nil)

	summary, err := svc.RenderAll(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, []string{"en-US", "en-GB", "en-AU", "en-CA"}, summary.Locales)

	for _, locale := range summary.Locales {
		entries, err := os.ReadDir(filepath.Join(root, locale))
		require.NoError(t, err)
		assert.Len(t, entries, 6)
	}
	_, err = os.Stat(filepath.Join(root, "ja"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRenderAllHonoursCancellation(t *testing.T) {
	root, _, svc := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := svc.RenderAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Files)
	_, err = os.Stat(filepath.Join(root, "en-US"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRenderLocaleHonoursCancellation(t *testing.T) {
	root, catalog, svc := setup(t)
	entry, err := catalog.Entry("ja")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := svc.RenderLocale(ctx, entry)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, files)

	entries, err := os.ReadDir(filepath.Join(root, "ja"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
