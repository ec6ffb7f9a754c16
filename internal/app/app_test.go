package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unifw/internal/adapters/telemetry"
	"go.trai.ch/unifw/internal/app"
	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/unifw/internal/core/ports/mocks"
	"go.trai.ch/unifw/internal/engine/arch"
	"go.uber.org/mock/gomock"
)

// funcMatcher matches arguments of type T for which fn holds.
type funcMatcher[T any] struct {
	fn func(T) bool
}

func match[T any](fn func(T) bool) gomock.Matcher {
	return funcMatcher[T]{fn: fn}
}

func (m funcMatcher[T]) Matches(x any) bool {
	v, ok := x.(T)
	return ok && m.fn(v)
}

func (m funcMatcher[T]) String() string {
	var zero T
	return fmt.Sprintf("satisfies condition on %T", zero)
}

type appMocks struct {
	loader    *mocks.MockManifestLoader
	compiler  *mocks.MockCompiler
	assembler *mocks.MockBundleAssembler
	inspector *mocks.MockSliceInspector
	store     *mocks.MockBuildRecordStore
	hasher    *mocks.MockHasher
	logger    *mocks.MockLogger
}

func newApp(t *testing.T) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		loader:    mocks.NewMockManifestLoader(ctrl),
		compiler:  mocks.NewMockCompiler(ctrl),
		assembler: mocks.NewMockBundleAssembler(ctrl),
		inspector: mocks.NewMockSliceInspector(ctrl),
		store:     mocks.NewMockBuildRecordStore(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(
		m.loader,
		m.compiler,
		m.assembler,
		arch.NewSelectors(m.inspector),
		m.store,
		m.hasher,
		telemetry.NewNoOp(),
		m.logger,
	)
	return a, m
}

func fooRequest() app.Request {
	return app.Request{
		Root: "/ws",
		Spec: &domain.PackageSpec{
			Name:          "Foo",
			Platforms:     []domain.Platform{domain.PlatformIOS, domain.PlatformOSX},
			CompilerFlags: map[domain.Platform][]string{domain.PlatformIOS: {"-DFOO=1"}},
		},
		Files:        domain.VendoredFiles{Libraries: []string{"/ws/Vendor/libBar.a"}},
		Platform:     domain.PlatformIOS,
		SourceDir:    "dist",
		UseFramework: true,
	}
}

func TestApp_Run(t *testing.T) {
	a, m := newApp(t)
	req := fooRequest()
	req.ExtraArgs = []string{"-quiet"}
	req.Environment = map[string]string{"DEVELOPER_DIR": "/Applications/Xcode.app/Contents/Developer"}

	isEnv := func(env domain.Environment) gomock.Matcher {
		return match(func(r ports.CompileRequest) bool {
			return r.Environment == env &&
				r.Target == "Foo-iOS" &&
				r.Platform == domain.PlatformIOS &&
				r.Root == "/ws" &&
				r.OutputDir == "/ws/"+env.BuildDirName() &&
				assert.ObjectsAreEqual(domain.DefaultArchitectures(), r.Archs) &&
				assert.ObjectsAreEqual([]string{"GCC_PREPROCESSOR_DEFINITIONS=$(inherited)", "-DFOO=1"}, r.Definitions) &&
				assert.ObjectsAreEqual([]string{"-quiet"}, r.ExtraArgs) &&
				assert.ObjectsAreEqual(req.Environment, r.Env)
		})
	}

	var recorded domain.BuildRecord
	gomock.InOrder(
		m.compiler.EXPECT().Compile(gomock.Any(), isEnv(domain.EnvironmentSimulator)).Return(nil),
		m.compiler.EXPECT().Compile(gomock.Any(), isEnv(domain.EnvironmentDevice)).Return(nil),
		m.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r ports.AssembleRequest) (string, error) {
				assert.Equal(t, "/ws/dist", r.DestinationDir)
				assert.Equal(t, "Foo-iOS", r.Target)
				assert.Equal(t, "/ws/build/Foo.framework", r.Device.Bundle)
				assert.Equal(t, "/ws/build-simulator/Foo.framework", r.Simulator.Bundle)
				assert.Equal(t, []string{"/ws/Vendor/libBar.a"}, r.Vendored)
				return "/ws/dist/Foo.framework", nil
			}),
		m.hasher.EXPECT().ComputeFileHash("/ws/dist/Foo.framework/Foo").Return("00000000deadbeef", nil),
		m.hasher.EXPECT().ComputeTreeHash("/ws/dist/Foo.framework").Return("00000000cafef00d", nil),
		m.store.EXPECT().Put(domain.WorkspaceRoot("/ws"), gomock.Any()).
			DoAndReturn(func(_ domain.WorkspaceRoot, r domain.BuildRecord) error {
				recorded = r
				return nil
			}),
	)

	session, err := a.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.SessionDone, session.State)
	assert.Equal(t, []domain.SessionState{
		domain.SessionInit,
		domain.SessionCompilingSimulator,
		domain.SessionCompilingDevice,
		domain.SessionAssembling,
		domain.SessionDone,
	}, session.History)
	assert.Equal(t, "/ws/dist/Foo.framework", session.Bundle)

	assert.Equal(t, "Foo", recorded.Package)
	assert.Equal(t, "00000000deadbeef", recorded.BinaryHash)
	assert.Equal(t, "00000000cafef00d", recorded.BundleHash)
	assert.Equal(t, session.ID.String(), recorded.SessionID)
}

func TestApp_Run_SimulatorFailureAborts(t *testing.T) {
	a, m := newApp(t)

	failure := domain.NewBuildFailure(domain.StageCompileSimulator, "xcodebuild -sdk iphonesimulator", []string{"error: boom"})
	m.compiler.EXPECT().
		Compile(gomock.Any(), match(func(r ports.CompileRequest) bool {
			return r.Environment == domain.EnvironmentSimulator
		})).
		Return(failure).
		Times(1)
	// Neither the device build nor the assembler may run.

	session, err := a.Run(context.Background(), fooRequest())
	require.ErrorIs(t, err, domain.ErrBuildFailed)

	var bf *domain.BuildFailure
	require.True(t, errors.As(err, &bf))
	assert.Equal(t, domain.StageCompileSimulator, bf.Stage)
	assert.Equal(t, "xcodebuild -sdk iphonesimulator", bf.Command)

	assert.Equal(t, domain.SessionFailed, session.State)
	assert.Equal(t, []domain.SessionState{
		domain.SessionInit,
		domain.SessionCompilingSimulator,
		domain.SessionFailed,
	}, session.History)
	assert.Equal(t, err, session.Err)
}

func TestApp_Run_DeviceFailureSkipsAssembly(t *testing.T) {
	a, m := newApp(t)

	gomock.InOrder(
		m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil),
		m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).
			Return(domain.NewBuildFailure(domain.StageCompileDevice, "xcodebuild", nil)),
	)

	session, err := a.Run(context.Background(), fooRequest())
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, session.History, domain.SessionCompilingDevice)
	assert.NotContains(t, session.History, domain.SessionAssembling)
}

func TestApp_Run_StaticLibraryModeWarns(t *testing.T) {
	a, m := newApp(t)
	req := fooRequest()
	req.UseFramework = false

	m.logger.EXPECT().Warn("useFramework is false; a framework bundle is built regardless").Times(1)
	m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return("/ws/dist/Foo.framework", nil)
	m.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return("h", nil)
	m.hasher.EXPECT().ComputeTreeHash(gomock.Any()).Return("t", nil)
	m.store.EXPECT().Put(gomock.Any(), match(func(r domain.BuildRecord) bool { return !r.UseFramework })).Return(nil)

	_, err := a.Run(context.Background(), req)
	require.NoError(t, err)
}

func TestApp_Run_RecordFailureOnlyWarns(t *testing.T) {
	a, m := newApp(t)

	m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return("/ws/dist/Foo.framework", nil)
	m.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return("", errors.New("gone"))
	m.hasher.EXPECT().ComputeTreeHash(gomock.Any()).Return("", errors.New("gone"))
	m.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))
	m.logger.EXPECT().Warn(gomock.Any()).Times(3)

	session, err := a.Run(context.Background(), fooRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionDone, session.State)
}

func TestApp_Run_IntersectionPolicy(t *testing.T) {
	a, m := newApp(t)
	req := fooRequest()
	req.Architectures = domain.ArchitecturePolicyIntersection

	m.inspector.EXPECT().Architectures(gomock.Any(), "/ws/Vendor/libBar.a").Return([]string{"arm64", "x86_64"}, nil)
	m.compiler.EXPECT().
		Compile(gomock.Any(), match(func(r ports.CompileRequest) bool {
			return assert.ObjectsAreEqual(domain.ArchitectureSet{"x86_64", "arm64"}, r.Archs)
		})).
		Return(nil).
		Times(2)
	m.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return("/ws/dist/Foo.framework", nil)
	m.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return("h", nil)
	m.hasher.EXPECT().ComputeTreeHash(gomock.Any()).Return("t", nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	session, err := a.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ArchitectureSet{"x86_64", "arm64"}, session.Archs)
}

func TestApp_Run_InvalidRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.Request)
		target error
	}{
		{name: "no spec", mutate: func(r *app.Request) { r.Spec = nil }, target: domain.ErrInvalidManifest},
		{name: "no root", mutate: func(r *app.Request) { r.Root = "" }, target: domain.ErrInvalidManifest},
		{name: "no source dir", mutate: func(r *app.Request) { r.SourceDir = "" }, target: domain.ErrInvalidManifest},
		{name: "unknown platform", mutate: func(r *app.Request) { r.Platform = "android" }, target: domain.ErrUnknownPlatform},
		{name: "undeclared platform", mutate: func(r *app.Request) { r.Platform = domain.PlatformTVOS }, target: domain.ErrPlatformNotDeclared},
		{name: "unknown policy", mutate: func(r *app.Request) { r.Architectures = "all" }, target: domain.ErrUnknownArchitecturePolicy},
		{name: "destination is working area", mutate: func(r *app.Request) { r.SourceDir = "ios" }, target: domain.ErrInvalidManifest},
		{name: "destination in build tree", mutate: func(r *app.Request) { r.SourceDir = "/ws/build" }, target: domain.ErrInvalidManifest},
		{
			name:   "malformed compiler flags",
			mutate: func(r *app.Request) { r.Spec.CompilerFlags[domain.PlatformIOS] = []string{`-DNAME="a b`} },
			target: domain.ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newApp(t)
			req := fooRequest()
			tt.mutate(&req)

			session, err := a.Run(context.Background(), req)
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, domain.SessionFailed, session.State)
		})
	}
}

func TestApp_Build_LoadFailure(t *testing.T) {
	a, m := newApp(t)
	m.loader.EXPECT().Load("unifw.yaml").Return(nil, domain.ErrInvalidManifest)

	_, err := a.Build(context.Background(), "unifw.yaml")
	require.ErrorIs(t, err, domain.ErrInvalidManifest)
}

func TestApp_Architectures(t *testing.T) {
	a, m := newApp(t)
	m.loader.EXPECT().Load("unifw.yaml").Return(&domain.Manifest{
		Root:          "/ws",
		Spec:          domain.PackageSpec{Name: "Foo", Platforms: []domain.Platform{domain.PlatformIOS}},
		Platform:      domain.PlatformIOS,
		Architectures: domain.ArchitecturePolicyFixed,
	}, nil)

	archs, err := a.Architectures(context.Background(), "unifw.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultArchitectures(), archs)
}

func TestApp_LastRecord(t *testing.T) {
	a, m := newApp(t)
	m.loader.EXPECT().Load("unifw.yaml").Return(&domain.Manifest{
		Root: "/ws",
		Spec: domain.PackageSpec{Name: "Foo"},
	}, nil)
	m.store.EXPECT().Get(domain.WorkspaceRoot("/ws"), "Foo").Return(&domain.BuildRecord{Package: "Foo"}, nil)

	record, err := a.LastRecord("unifw.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Foo", record.Package)
}
