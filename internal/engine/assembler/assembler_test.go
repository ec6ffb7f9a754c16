package assembler_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unifw/internal/adapters/fs"
	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/unifw/internal/core/ports/mocks"
	"go.trai.ch/unifw/internal/engine/assembler"
	"go.trai.ch/unifw/internal/engine/header"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root     domain.WorkspaceRoot
	spec     *domain.PackageSpec
	combiner *mocks.MockBinaryCombiner
	logger   *mocks.MockLogger
	asm      *assembler.Assembler
	req      ports.AssembleRequest
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // Test file with controlled path
	require.NoError(t, err)
	return string(data)
}

// newFixture lays out two build trees of package Foo as the build tool leaves them.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := domain.WorkspaceRoot(t.TempDir())
	spec := &domain.PackageSpec{Name: "Foo", Platforms: []domain.Platform{domain.PlatformIOS}}

	for _, env := range []domain.Environment{domain.EnvironmentSimulator, domain.EnvironmentDevice} {
		tree := root.BuildTreeFor(env, spec)
		writeFile(t, filepath.Join(tree.Bundle, "Info.plist"), "plist-"+env.String())
		writeFile(t, tree.Binary(spec), "binary-"+env.String())
		writeFile(t, filepath.Join(tree.Bundle, domain.CodeSignatureDirName, "CodeResources"), "sig")
		writeFile(t, filepath.Join(tree.Bundle, env.String()+".only"), env.String())
	}

	ctrl := gomock.NewController(t)
	fsys := fs.NewFileSystem(fs.NewWalker(), fs.NewResolver())
	combiner := mocks.NewMockBinaryCombiner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	return &fixture{
		root:     root,
		spec:     spec,
		combiner: combiner,
		logger:   log,
		asm:      assembler.New(fsys, combiner, header.NewMerger(fsys), log),
		req: ports.AssembleRequest{
			Root:           root,
			Spec:           spec,
			Platform:       domain.PlatformIOS,
			Target:         "Foo",
			Device:         root.BuildTreeFor(domain.EnvironmentDevice, spec),
			Simulator:      root.BuildTreeFor(domain.EnvironmentSimulator, spec),
			Vendored:       []string{"/vendor/libBar.a"},
			DestinationDir: root.Path("dist"),
		},
	}
}

// expectCombine makes the combiner write a binary naming its inputs.
func (f *fixture) expectCombine() *gomock.Call {
	return f.combiner.EXPECT().Combine(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inputs []string, output string) error {
			return os.WriteFile(output, []byte("fat:"+strings.Join(inputs, ",")), 0o600)
		})
}

func TestAssemble(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	device := f.req.Device.Binary(f.spec)
	sim := f.req.Simulator.Binary(f.spec)
	bundle := f.root.OutputBundle(domain.PlatformIOS, f.spec)

	f.combiner.EXPECT().
		Combine(gomock.Any(), []string{device, sim, "/vendor/libBar.a"}, filepath.Join(bundle, "Foo")).
		DoAndReturn(func(_ context.Context, inputs []string, output string) error {
			// The overlay has already happened: the device binary is in place.
			assert.Equal(t, "binary-device", readFile(t, output))
			return os.WriteFile(output, []byte("fat"), 0o600)
		})

	dst, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)
	assert.Equal(t, f.root.Path("dist", "Foo.framework"), dst)

	assert.Equal(t, "fat", readFile(t, filepath.Join(dst, "Foo")))
	assert.Equal(t, "plist-device", readFile(t, filepath.Join(dst, "Info.plist")), "device overlays simulator")
	assert.FileExists(t, filepath.Join(dst, "simulator.only"))
	assert.FileExists(t, filepath.Join(dst, "device.only"))
	assert.NoDirExists(t, filepath.Join(dst, domain.CodeSignatureDirName))
	assert.NoDirExists(t, filepath.Join(bundle, domain.CodeSignatureDirName))
}

func TestAssemble_MergesBridgingHeader(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.expectCombine()

	simHeader := f.req.Simulator.BridgingHeader("Foo")
	deviceHeader := f.req.Device.BridgingHeader("Foo")
	writeFile(t, simHeader, "SIM\n")
	writeFile(t, deviceHeader, "DEVICE\n")

	dst, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)

	expected := string(header.Merge([]byte("SIM\n"), []byte("DEVICE\n")))
	assert.Equal(t, expected, readFile(t, filepath.Join(dst, "Headers", "Foo-Swift.h")))
	assert.Equal(t, expected, readFile(t, f.root.MergedHeader("Foo")))
	assert.Equal(t, "DEVICE\n", readFile(t, deviceHeader), "inputs are never rewritten")
	assert.Equal(t, "SIM\n", readFile(t, simHeader))
}

func TestAssemble_ResourcesAndLicense(t *testing.T) {
	f := newFixture(t)
	f.expectCombine()
	f.req.Spec.License = domain.License{File: "COPYING"}

	writeFile(t, filepath.Join(f.req.Device.Root, "Res.bundle", "image.png"), "png")
	writeFile(t, f.root.Path("COPYING"), "MIT")

	dst, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, "png", readFile(t, filepath.Join(dst, "Res.bundle", "image.png")))
	assert.Equal(t, "MIT", readFile(t, filepath.Join(f.root.WorkingDir(domain.PlatformIOS), "COPYING")))
}

func TestAssemble_InlineLicense(t *testing.T) {
	f := newFixture(t)
	f.expectCombine()
	f.req.Spec.License = domain.License{Text: "Copyright Foo"}

	_, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, "Copyright Foo", readFile(t, filepath.Join(f.root.WorkingDir(domain.PlatformIOS), "LICENSE")))
}

func TestAssemble_MissingLicenseWarns(t *testing.T) {
	f := newFixture(t)
	f.expectCombine()
	f.logger.EXPECT().Warn("license file not found: " + f.root.Path("LICENSE")).Times(1)

	_, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)
}

func TestAssemble_ReplacesPreviousDelivery(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.expectCombine()

	stale := filepath.Join(f.req.DestinationDir, "Foo.framework", "Stale.h")
	writeFile(t, stale, "old")

	dst, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dst, "Foo"))
}

func TestAssemble_SkipsMissingBinary(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	require.NoError(t, os.Remove(f.req.Simulator.Binary(f.spec)))

	f.combiner.EXPECT().
		Combine(gomock.Any(), []string{f.req.Device.Binary(f.spec), "/vendor/libBar.a"}, gomock.Any()).
		Return(nil)

	_, err := f.asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)
}

func TestAssemble_CombineFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	failure := domain.NewBuildFailure(domain.StageCombine, "lipo -create", []string{"fatal error"})
	f.combiner.EXPECT().Combine(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure)

	_, err := f.asm.Assemble(context.Background(), f.req)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.NoDirExists(t, filepath.Join(f.req.DestinationDir, "Foo.framework"), "nothing is delivered")
}

func TestAssemble_MissingBuildTree(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.RemoveAll(f.req.Simulator.Bundle))

	_, err := f.asm.Assemble(context.Background(), f.req)
	require.ErrorIs(t, err, domain.ErrMissingBuildTree)
}

func TestAssemble_RejectsDestinationInAssemblyArea(t *testing.T) {
	for _, dest := range []string{"ios", "build", "build-simulator"} {
		t.Run(dest, func(t *testing.T) {
			f := newFixture(t)
			bundle := f.root.OutputBundle(domain.PlatformIOS, f.spec)
			writeFile(t, filepath.Join(bundle, "Foo"), "previous")
			f.req.DestinationDir = f.root.Path(dest)

			_, err := f.asm.Assemble(context.Background(), f.req)
			require.ErrorIs(t, err, domain.ErrInvalidManifest)

			assert.Equal(t, "previous", readFile(t, filepath.Join(bundle, "Foo")), "working bundle is untouched")
			assert.FileExists(t, f.req.Device.Binary(f.spec))
			assert.FileExists(t, f.req.Simulator.Binary(f.spec))
		})
	}
}

func TestAssemble_ReportsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	f.expectCombine()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	var steps []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { steps = append(steps, msg) }).AnyTimes()

	fsys := fs.NewFileSystem(fs.NewWalker(), fs.NewResolver())
	asm := assembler.New(fsys, f.combiner, header.NewMerger(fsys), log)

	_, err := asm.Assemble(context.Background(), f.req)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"copying simulator bundle",
		"copying device bundle",
		"merging binaries",
		"no bridging header to merge",
		"copying bundle to " + f.req.DestinationDir,
	}, steps)
}
