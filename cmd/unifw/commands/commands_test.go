package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unifw/cmd/unifw/commands"
	"go.trai.ch/unifw/internal/adapters/fs"
	"go.trai.ch/unifw/internal/adapters/telemetry"
	"go.trai.ch/unifw/internal/app"
	"go.trai.ch/unifw/internal/build"
	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports/mocks"
	"go.trai.ch/unifw/internal/engine/arch"
	"go.trai.ch/unifw/internal/engine/header"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader    *mocks.MockManifestLoader
	compiler  *mocks.MockCompiler
	assembler *mocks.MockBundleAssembler
	inspector *mocks.MockSliceInspector
	store     *mocks.MockBuildRecordStore
	hasher    *mocks.MockHasher
	logger    *mocks.MockLogger
}

func newCLI(t *testing.T) (*commands.CLI, *cliMocks, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &cliMocks{
		loader:    mocks.NewMockManifestLoader(ctrl),
		compiler:  mocks.NewMockCompiler(ctrl),
		assembler: mocks.NewMockBundleAssembler(ctrl),
		inspector: mocks.NewMockSliceInspector(ctrl),
		store:     mocks.NewMockBuildRecordStore(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	noop := telemetry.NewNoOp()
	a := app.New(m.loader, m.compiler, m.assembler, arch.NewSelectors(m.inspector),
		m.store, m.hasher, noop, m.logger)

	components := &app.Components{
		App:       a,
		Logger:    m.logger,
		Headers:   header.NewMerger(fs.NewFileSystem(fs.NewWalker(), fs.NewResolver())),
		Telemetry: noop,
	}

	var out, errOut bytes.Buffer
	cli := commands.New(components)
	cli.SetOutput(&out, &errOut)
	return cli, m, &out, &errOut
}

func fooManifest() *domain.Manifest {
	return &domain.Manifest{
		Root: "/ws",
		Spec: domain.PackageSpec{
			Name:      "Foo",
			Platforms: []domain.Platform{domain.PlatformIOS},
		},
		Platform:      domain.PlatformIOS,
		SourceDir:     "dist",
		UseFramework:  true,
		Architectures: domain.ArchitecturePolicyFixed,
	}
}

func TestBuild_Success(t *testing.T) {
	cli, m, out, _ := newCLI(t)

	m.loader.EXPECT().Load("/ws").Return(fooManifest(), nil).Times(2)
	m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return("/ws/dist/Foo.framework", nil)
	m.hasher.EXPECT().ComputeFileHash("/ws/dist/Foo.framework/Foo").Return("00000000deadbeef", nil)
	m.hasher.EXPECT().ComputeTreeHash("/ws/dist/Foo.framework").Return("00000000cafef00d", nil)
	m.store.EXPECT().Put(domain.WorkspaceRoot("/ws"), gomock.Any()).Return(nil)
	m.store.EXPECT().Get(domain.WorkspaceRoot("/ws"), "Foo").
		Return(&domain.BuildRecord{Package: "Foo", BinaryHash: "00000000deadbeef"}, nil)

	cli.SetArgs([]string{"build", "-c", "/ws"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "Foo -> /ws/dist/Foo.framework")
	assert.Contains(t, out.String(), "archs:   x86_64 arm64 armv7 armv7s i386")
	assert.Contains(t, out.String(), "binary:  00000000deadbeef")
}

func TestBuild_CompileFailure(t *testing.T) {
	cli, m, out, errOut := newCLI(t)

	failure := domain.NewBuildFailure(domain.StageCompileSimulator, "xcodebuild clean build",
		[]string{"** BUILD FAILED **"})

	m.loader.EXPECT().Load(commands.DefaultConfig).Return(fooManifest(), nil)
	m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(failure)

	cli.SetArgs([]string{"build"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrBuildFailed)

	var got *domain.BuildFailure
	require.True(t, errors.As(err, &got))
	assert.Equal(t, domain.StageCompileSimulator, got.Stage)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "failed during compiling-simulator")
}

func TestBuild_LoadFailure(t *testing.T) {
	cli, m, _, errOut := newCLI(t)

	m.loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrInvalidManifest)

	cli.SetArgs([]string{"build", "--config", "missing.yaml"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidManifest)
	assert.Empty(t, errOut.String())
}

func TestArchs(t *testing.T) {
	cli, m, out, _ := newCLI(t)

	m.loader.EXPECT().Load(commands.DefaultConfig).Return(fooManifest(), nil)

	cli.SetArgs([]string{"archs"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "x86_64 arm64 armv7 armv7s i386\n", out.String())
}

func TestArchs_Intersection(t *testing.T) {
	cli, m, out, _ := newCLI(t)

	manifest := fooManifest()
	manifest.Architectures = domain.ArchitecturePolicyIntersection
	manifest.Vendored = domain.VendoredFiles{Libraries: []string{"/ws/Vendor/libBar.a"}}

	m.loader.EXPECT().Load(commands.DefaultConfig).Return(manifest, nil)
	m.inspector.EXPECT().Architectures(gomock.Any(), "/ws/Vendor/libBar.a").Return([]string{"arm64", "x86_64"}, nil)

	cli.SetArgs([]string{"archs"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "x86_64 arm64\n", out.String())
}

func TestMergeHeader(t *testing.T) {
	cli, _, out, _ := newCLI(t)

	dir := t.TempDir()
	sim := filepath.Join(dir, "sim.h")
	dev := filepath.Join(dir, "dev.h")
	merged := filepath.Join(dir, "out", "Foo-Swift.h")
	require.NoError(t, os.WriteFile(sim, []byte("SWIFT_CLASS(\"_TtC3Foo3Sim\")\n"), 0o600))
	require.NoError(t, os.WriteFile(dev, []byte("SWIFT_CLASS(\"_TtC3Foo3Dev\")\n"), 0o600))

	cli.SetArgs([]string{"merge-header", sim, dev, "-o", merged})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), merged)

	data, err := os.ReadFile(merged)
	require.NoError(t, err)
	assert.Equal(t, string(header.Merge(
		[]byte("SWIFT_CLASS(\"_TtC3Foo3Sim\")\n"),
		[]byte("SWIFT_CLASS(\"_TtC3Foo3Dev\")\n"),
	)), string(data))
}

func TestMergeHeader_MissingInput(t *testing.T) {
	cli, _, _, _ := newCLI(t)

	dir := t.TempDir()
	dev := filepath.Join(dir, "dev.h")
	require.NoError(t, os.WriteFile(dev, []byte("int x;\n"), 0o600))

	cli.SetArgs([]string{"merge-header", filepath.Join(dir, "sim.h"), dev, "-o", filepath.Join(dir, "out.h")})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bridging header not found")
	assert.NoFileExists(t, filepath.Join(dir, "out.h"))
}

func TestMergeHeader_RequiresOutput(t *testing.T) {
	cli, _, _, _ := newCLI(t)

	cli.SetArgs([]string{"merge-header", "sim.h", "dev.h"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli, _, out, _ := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "unifw version "+build.Version+"\n", out.String())
}
