// Package app implements the application layer for unifw.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/unifw/internal/engine/arch"
	"go.trai.ch/zerr"
)

// App runs build sessions.
type App struct {
	loader    ports.ManifestLoader
	compiler  ports.Compiler
	assembler ports.BundleAssembler
	selectors arch.Selectors
	store     ports.BuildRecordStore
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	compiler ports.Compiler,
	assembler ports.BundleAssembler,
	selectors arch.Selectors,
	store ports.BuildRecordStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		compiler:  compiler,
		assembler: assembler,
		selectors: selectors,
		store:     store,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Request is the input of one build session.
type Request struct {
	Root          domain.WorkspaceRoot
	Spec          *domain.PackageSpec
	Files         ports.FileAccessor
	Platform      domain.Platform
	SourceDir     string
	UseFramework  bool
	Project       string
	Configuration string
	Architectures domain.ArchitecturePolicy
	ExtraArgs     []string
	Environment   map[string]string
}

// RequestFromManifest builds the session request described by a loaded manifest.
func RequestFromManifest(m *domain.Manifest) Request {
	return Request{
		Root:          m.Root,
		Spec:          &m.Spec,
		Files:         m.Vendored,
		Platform:      m.Platform,
		SourceDir:     m.SourceDir,
		UseFramework:  m.UseFramework,
		Project:       m.Project,
		Configuration: m.Configuration,
		Architectures: m.Architectures,
		ExtraArgs:     m.ExtraArgs,
		Environment:   m.Environment,
	}
}

// Load reads the manifest at path.
func (a *App) Load(path string) (*domain.Manifest, error) {
	m, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return m, nil
}

// Build loads the manifest at path and runs one session for it.
func (a *App) Build(ctx context.Context, path string) (*domain.Session, error) {
	m, err := a.Load(path)
	if err != nil {
		return nil, err
	}
	return a.Run(ctx, RequestFromManifest(m))
}

// Architectures returns the architecture hint the manifest at path would build with.
func (a *App) Architectures(ctx context.Context, path string) (domain.ArchitectureSet, error) {
	m, err := a.Load(path)
	if err != nil {
		return nil, err
	}
	return a.selectArchitectures(ctx, m.Architectures, m.Vendored.All())
}

// LastRecord returns the record of the last successful session for the manifest at path, or nil.
func (a *App) LastRecord(path string) (*domain.BuildRecord, error) {
	m, err := a.Load(path)
	if err != nil {
		return nil, err
	}
	return a.store.Get(m.Root, m.Spec.Name)
}

// Run executes one build session: compile for the simulator, compile for the
// device, then assemble and deliver the bundle. The first failing stage aborts
// the session, which is returned in the Failed state along with the error.
func (a *App) Run(ctx context.Context, req Request) (*domain.Session, error) {
	session := domain.NewSession()
	if err := a.run(ctx, session, req); err != nil {
		a.logTransition(session, domain.SessionFailed)
		session.Fail(err)
		return session, err
	}
	a.transition(session, domain.SessionDone)
	return session, nil
}

func (a *App) run(ctx context.Context, session *domain.Session, req Request) error {
	if err := validate(&req); err != nil {
		return err
	}

	spec := req.Spec
	session.Target = spec.BuildTarget(req.Platform)

	vendored := vendoredPaths(req.Files)
	archs, err := a.selectArchitectures(ctx, req.Architectures, vendored)
	if err != nil {
		return err
	}
	session.Archs = archs

	if !req.UseFramework {
		a.logger.Warn("useFramework is false; a framework bundle is built regardless")
	}

	definitions, err := spec.Definitions(req.Platform)
	if err != nil {
		return err
	}
	trees := map[domain.Environment]domain.BuildTree{}

	for _, env := range []domain.Environment{domain.EnvironmentSimulator, domain.EnvironmentDevice} {
		a.transition(session, compileState(env))

		tree := req.Root.BuildTreeFor(env, spec)
		trees[env] = tree

		compileReq := ports.CompileRequest{
			Root:          req.Root,
			Project:       req.Project,
			Configuration: req.Configuration,
			Platform:      req.Platform,
			Environment:   env,
			Archs:         archs,
			Definitions:   definitions,
			ExtraArgs:     req.ExtraArgs,
			Env:           req.Environment,
			OutputDir:     tree.Root,
			Target:        session.Target,
		}
		err := a.stage(ctx, domain.StageForEnvironment(env), func(ctx context.Context) error {
			return a.compiler.Compile(ctx, compileReq)
		})
		if err != nil {
			return zerr.Wrap(err, env.String()+" build failed")
		}
	}

	a.transition(session, domain.SessionAssembling)

	err = a.stage(ctx, domain.StageAssemble, func(ctx context.Context) error {
		bundle, err := a.assembler.Assemble(ctx, ports.AssembleRequest{
			Root:           req.Root,
			Spec:           spec,
			Platform:       req.Platform,
			Target:         session.Target,
			Device:         trees[domain.EnvironmentDevice],
			Simulator:      trees[domain.EnvironmentSimulator],
			Vendored:       vendored,
			DestinationDir: req.SourceDir,
		})
		session.Bundle = bundle
		return err
	})
	if err != nil {
		return zerr.Wrap(err, "assembly failed")
	}

	a.record(session, req)
	return nil
}

func (a *App) transition(session *domain.Session, next domain.SessionState) {
	a.logTransition(session, next)
	session.Transition(next)
}

func (a *App) logTransition(session *domain.Session, next domain.SessionState) {
	a.logger.Info(fmt.Sprintf("session %s: %s -> %s", session.ID, session.State, next))
}

// stage runs fn inside a telemetry vertex named after the stage.
func (a *App) stage(ctx context.Context, stage domain.Stage, fn func(context.Context) error) error {
	vctx, vertex := a.telemetry.Record(ctx, string(stage))
	err := fn(vctx)
	vertex.Complete(err)
	return err
}

func (a *App) selectArchitectures(
	ctx context.Context,
	policy domain.ArchitecturePolicy,
	vendored []string,
) (domain.ArchitectureSet, error) {
	selector, err := a.selectors.For(policy)
	if err != nil {
		return nil, err
	}
	archs, err := selector.Select(ctx, vendored)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to select architectures")
	}
	return archs, nil
}

// record persists the outcome of a delivered session. The bundle is already in
// place, so failures here are reported and otherwise ignored.
func (a *App) record(session *domain.Session, req Request) {
	record := domain.BuildRecord{
		Package:       req.Spec.Name,
		Target:        session.Target,
		Platform:      req.Platform,
		Architectures: session.Archs,
		Destination:   session.Bundle,
		UseFramework:  req.UseFramework,
		SessionID:     session.ID.String(),
		Timestamp:     time.Now(),
	}

	hash, err := a.hasher.ComputeFileHash(filepath.Join(session.Bundle, req.Spec.Name))
	if err != nil {
		a.logger.Warn("failed to hash bundle binary: " + err.Error())
	}
	record.BinaryHash = hash

	bundleHash, err := a.hasher.ComputeTreeHash(session.Bundle)
	if err != nil {
		a.logger.Warn("failed to hash bundle: " + err.Error())
	}
	record.BundleHash = bundleHash

	if err := a.store.Put(req.Root, record); err != nil {
		a.logger.Warn("failed to record build: " + err.Error())
	}
}

func validate(req *Request) error {
	if req.Spec == nil {
		return zerr.Wrap(domain.ErrInvalidManifest, "package spec is required")
	}
	if req.Root == "" {
		return zerr.Wrap(domain.ErrInvalidManifest, "workspace root is required")
	}
	if req.SourceDir == "" {
		return zerr.Wrap(domain.ErrInvalidManifest, "source directory is required")
	}

	root, err := filepath.Abs(string(req.Root))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "root", string(req.Root))
	}
	req.Root = domain.WorkspaceRoot(root)

	if !filepath.IsAbs(req.SourceDir) {
		req.SourceDir = req.Root.Path(req.SourceDir)
	}

	if err := req.Platform.Validate(); err != nil {
		return err
	}
	if err := req.Spec.Validate(req.Platform); err != nil {
		return err
	}
	return req.Root.ValidateDestination(req.SourceDir, req.Platform, req.Spec)
}

func vendoredPaths(files ports.FileAccessor) []string {
	if files == nil {
		return nil
	}
	frameworks := files.VendoredStaticFrameworks()
	libraries := files.VendoredStaticLibraries()

	out := make([]string, 0, len(frameworks)+len(libraries))
	out = append(out, frameworks...)
	return append(out, libraries...)
}

func compileState(env domain.Environment) domain.SessionState {
	if env == domain.EnvironmentSimulator {
		return domain.SessionCompilingSimulator
	}
	return domain.SessionCompilingDevice
}
