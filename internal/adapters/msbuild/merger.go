// Package msbuild reads host MSBuild descriptors and merges the inheritable
// settings they declare across their import graph.
package msbuild

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	itemGroupTag     = "ItemGroup"
	propertyGroupTag = "PropertyGroup"
	importTag        = "Import"
)

// settingsAllowList names the elements eligible for inheritance into a
// generated descriptor. Everything else the host project declares stays
// behind: the generated program must not depend on build machinery it
// cannot satisfy.
var settingsAllowList = map[string]struct{}{
	"NetCoreAppImplicitPackageTargetFallback": {},
	"PackageTargetFallback":                   {},
	"LangVersion":                             {},
	"UseWpf":                                  {},
	"UseWindowsForms":                         {},
	"CopyLocalLockFileAssemblies":             {},
	"PreserveCompilationContext":              {},
	"UserSecretsId":                           {},
	"EnablePreviewFeatures":                   {},
	"RestoreAdditionalProjectSources":         {},
	"Nullable":                                {},
}

// Merger implements ports.SettingsMerger over MSBuild XML documents.
type Merger struct{}

var _ ports.SettingsMerger = (*Merger)(nil)

// NewMerger creates a new Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge walks the host descriptor and every fragment it transitively
// imports, returning the copied settings and the SDK governing the
// generated build.
//
// A request carrying an explicit RuntimeFrameworkVersion skips the walk
// entirely: the caller has pinned the runtime, and inheriting further
// settings could contradict the pin.
func (m *Merger) Merge(request domain.BuildRequest, hostPath string) (domain.MergedSettings, error) {
	if request.RuntimeFrameworkVersion != "" {
		return domain.MergedSettings{
			Settings: runtimeFrameworkVersionBlock(request.RuntimeFrameworkVersion),
			SdkName:  domain.DefaultSdkName,
		}, nil
	}

	if strings.TrimSpace(hostPath) == "" || filepath.Dir(hostPath) == hostPath {
		return domain.MergedSettings{}, zerr.With(domain.ErrMissingDescriptorDirectory, "path", hostPath)
	}

	doc, err := parseDescriptor(hostPath)
	if err != nil {
		return domain.MergedSettings{}, err
	}

	acc := newAccumulator()
	if err := m.copySettings(doc, hostPath, acc); err != nil {
		return domain.MergedSettings{}, err
	}

	settings, err := acc.render()
	if err != nil {
		return domain.MergedSettings{}, err
	}

	return domain.MergedSettings{
		Settings: settings,
		SdkName:  resolveSdkName(doc.Root(), request.Moniker),
	}, nil
}

// copySettings copies allow-listed children of every ItemGroup and
// PropertyGroup in the document, then recurses into each resolvable import.
// Each distinct fragment contributes exactly once: convergent and cyclic
// import graphs are deduplicated by canonical path.
func (m *Merger) copySettings(doc *etree.Document, docPath string, acc *accumulator) error {
	canonical, err := filepath.Abs(docPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to canonicalize descriptor path"), "path", docPath)
	}
	if acc.seen(filepath.Clean(canonical)) {
		return nil
	}

	for _, kind := range []string{itemGroupTag, propertyGroupTag} {
		for _, group := range doc.FindElements("//" + kind) {
			for _, setting := range group.ChildElements() {
				if _, ok := settingsAllowList[setting.Tag]; ok {
					acc.add(kind, setting.Copy())
				}
			}
		}
	}

	for _, imp := range doc.FindElements("//" + importTag) {
		target := imp.SelectAttrValue("Project", "")
		if target == "" {
			continue
		}
		// Unresolvable targets are routine: optional fragments and
		// unexpanded MSBuild variables both land here.
		resolved, ok := resolveImportPath(target, filepath.Dir(docPath))
		if !ok {
			continue
		}
		fragment, err := parseDescriptor(resolved)
		if err != nil {
			return err
		}
		if err := m.copySettings(fragment, resolved, acc); err != nil {
			return err
		}
	}
	return nil
}

// resolveSdkName applies the SDK precedence rules: the Sdk attribute of a
// direct Import element (netcoreapp-family targets only), then the root
// element's own Sdk attribute, then an Sdk child element, then the default.
//
// The import scan is restricted to netcoreapp-family targets because SDK
// imports on other targets are usually guarded by build conditions this
// walk does not evaluate.
func resolveSdkName(root *etree.Element, moniker domain.Moniker) string {
	if root == nil {
		return domain.DefaultSdkName
	}
	if moniker.IsNetCoreApp() {
		for _, imp := range root.SelectElements(importTag) {
			if sdk := imp.SelectAttrValue("Sdk", ""); sdk != "" {
				return sdk
			}
		}
	}
	if sdk := root.SelectAttrValue("Sdk", ""); sdk != "" {
		return sdk
	}
	for _, el := range root.SelectElements("Sdk") {
		name := el.SelectAttrValue("Name", "")
		if name == "" {
			continue
		}
		if version := el.SelectAttrValue("Version", ""); version != "" {
			return name + "/" + version
		}
		return name
	}
	return domain.DefaultSdkName
}

// resolveImportPath resolves an import target: a path that already exists,
// absolute or relative to the working directory, is used as-is; otherwise it
// is retried relative to the importing document.
func resolveImportPath(target, importerDir string) (string, bool) {
	if fileExists(target) {
		return target, true
	}
	relative := filepath.Join(importerDir, target)
	if fileExists(relative) {
		return relative, true
	}
	return "", false
}

func parseDescriptor(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse build descriptor"), "path", path)
	}
	if doc.Root() == nil {
		return nil, zerr.With(zerr.New("build descriptor has no root element"), "path", path)
	}
	return doc, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func runtimeFrameworkVersionBlock(version string) string {
	el := etree.NewElement("RuntimeFrameworkVersion")
	el.SetText(version)
	group := etree.NewElement(propertyGroupTag)
	group.AddChild(el)

	acc := newAccumulator()
	acc.props = group
	// Serialization of a single synthetic property cannot fail.
	settings, _ := acc.render()
	return settings
}
