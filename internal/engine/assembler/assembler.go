// Package assembler turns the simulator and device build trees into one bundle
// and delivers it to its destination.
package assembler

import (
	"context"
	"path/filepath"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

// ResourceBundlePattern matches the resource bundles the build tool leaves next to the framework.
const ResourceBundlePattern = "*.bundle"

var _ ports.BundleAssembler = (*Assembler)(nil)

// Assembler implements ports.BundleAssembler.
type Assembler struct {
	fs       ports.FileSystem
	combiner ports.BinaryCombiner
	headers  ports.HeaderMerger
	logger   ports.Logger
}

// New creates a new Assembler.
func New(fs ports.FileSystem, combiner ports.BinaryCombiner, headers ports.HeaderMerger, logger ports.Logger) *Assembler {
	return &Assembler{fs: fs, combiner: combiner, headers: headers, logger: logger}
}

// Assemble builds the bundle in the working area of the platform and copies it
// to the destination. The steps run in order and the first failure aborts.
func (a *Assembler) Assemble(ctx context.Context, req ports.AssembleRequest) (string, error) {
	bundle := req.Root.OutputBundle(req.Platform, req.Spec)

	if err := req.Root.ValidateDestination(req.DestinationDir, req.Platform, req.Spec); err != nil {
		return "", err
	}

	for _, tree := range []domain.BuildTree{req.Simulator, req.Device} {
		if !a.fs.Exists(tree.Bundle) {
			return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingBuildTree, "build tree has no bundle"),
				"environment", tree.Environment.String()), "path", tree.Bundle)
		}
	}

	if err := a.overlay(ctx, req, bundle); err != nil {
		return "", err
	}
	if err := a.combine(ctx, req, bundle); err != nil {
		return "", err
	}
	if err := a.mergeHeaders(ctx, req, bundle); err != nil {
		return "", err
	}
	if err := a.copyResources(ctx, req, bundle); err != nil {
		return "", err
	}
	if err := a.copyLicense(ctx, req); err != nil {
		return "", err
	}
	return a.deliver(ctx, req, bundle)
}

// overlay recreates the bundle from the simulator tree and then the device tree,
// dropping the signature that the copy invalidates.
func (a *Assembler) overlay(ctx context.Context, req ports.AssembleRequest, bundle string) error {
	if err := a.fs.RemoveAll(bundle); err != nil {
		return zerr.Wrap(err, "failed to clear output bundle")
	}

	for _, tree := range []domain.BuildTree{req.Simulator, req.Device} {
		a.progress(ctx, "copying "+tree.Environment.String()+" bundle")
		if err := a.fs.Copy(tree.Bundle, bundle); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to copy build tree"), "environment", tree.Environment.String())
		}
	}

	if err := a.fs.RemoveAll(filepath.Join(bundle, domain.CodeSignatureDirName)); err != nil {
		return zerr.Wrap(err, "failed to remove code signature")
	}
	return nil
}

func (a *Assembler) combine(ctx context.Context, req ports.AssembleRequest, bundle string) error {
	inputs := make([]string, 0, len(req.Vendored)+2)
	for _, tree := range []domain.BuildTree{req.Device, req.Simulator} {
		binary := tree.Binary(req.Spec)
		if !a.fs.Exists(binary) {
			a.logger.Warn("no " + tree.Environment.String() + " binary at " + binary)
			continue
		}
		inputs = append(inputs, binary)
	}
	inputs = append(inputs, req.Vendored...)

	a.progress(ctx, "merging binaries")
	if err := a.combiner.Combine(ctx, inputs, filepath.Join(bundle, req.Spec.Name)); err != nil {
		return zerr.Wrap(err, "failed to merge binaries")
	}
	return nil
}

func (a *Assembler) mergeHeaders(ctx context.Context, req ports.AssembleRequest, bundle string) error {
	merged := req.Root.MergedHeader(req.Target)
	ok, err := a.headers.Merge(req.Simulator.BridgingHeader(req.Target), req.Device.BridgingHeader(req.Target), merged)
	if err != nil {
		return zerr.Wrap(err, "failed to merge bridging headers")
	}
	if !ok {
		a.progress(ctx, "no bridging header to merge")
		return nil
	}

	a.progress(ctx, "merged bridging header")
	dst := filepath.Join(bundle, domain.HeadersDirName, domain.BridgingHeaderName(req.Target))
	if err := a.fs.Copy(merged, dst); err != nil {
		return zerr.Wrap(err, "failed to copy merged header")
	}
	return nil
}

func (a *Assembler) copyResources(ctx context.Context, req ports.AssembleRequest, bundle string) error {
	resources, err := a.fs.Glob(req.Device.Root, ResourceBundlePattern)
	if err != nil {
		return zerr.Wrap(err, "failed to find resource bundles")
	}

	for _, resource := range resources {
		a.progress(ctx, "copying "+filepath.Base(resource))
		if err := a.fs.Copy(resource, filepath.Join(bundle, filepath.Base(resource))); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to copy resource bundle"), "path", resource)
		}
	}
	return nil
}

func (a *Assembler) copyLicense(ctx context.Context, req ports.AssembleRequest) error {
	license := req.Spec.License
	dst := filepath.Join(req.Root.WorkingDir(req.Platform), domain.DefaultLicenseFile)

	src := license.FileOrDefault()
	if !filepath.IsAbs(src) {
		src = req.Root.Path(src)
	}

	switch {
	case a.fs.Exists(src):
		a.progress(ctx, "copying license")
		if err := a.fs.Copy(src, filepath.Join(req.Root.WorkingDir(req.Platform), filepath.Base(src))); err != nil {
			return zerr.Wrap(err, "failed to copy license")
		}
	case license.Text != "":
		a.progress(ctx, "writing license")
		if err := a.fs.WriteFile(dst, []byte(license.Text)); err != nil {
			return zerr.Wrap(err, "failed to write license")
		}
	default:
		a.logger.Warn("license file not found: " + src)
	}
	return nil
}

func (a *Assembler) deliver(ctx context.Context, req ports.AssembleRequest, bundle string) (string, error) {
	dst := filepath.Join(req.DestinationDir, req.Spec.FrameworkName())

	if err := a.fs.RemoveAll(dst); err != nil {
		return "", zerr.Wrap(err, "failed to remove previous bundle")
	}

	a.progress(ctx, "copying bundle to "+req.DestinationDir)
	if err := a.fs.Copy(bundle, dst); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to deliver bundle"), "destination", dst)
	}
	return dst, nil
}

// progress reports an assembly step to the logger and to the vertex carried by ctx.
func (a *Assembler) progress(ctx context.Context, msg string) {
	a.logger.Info(msg)
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, msg)
	}
}
