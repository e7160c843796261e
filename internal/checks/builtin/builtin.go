// Package builtin registers the TurboJPEG integration checklist.
package builtin

import "turbocheck/internal/checks"

const (
	PhaseRequiredFiles  = "required-files"
	PhaseCMakeContent   = "cmake-content"
	PhaseDartFFIContent = "dart-ffi-content"

	CMakeListsPath  = "CMakeLists.txt"
	DartBindingPath = "../lib/services/decode_jpeg_ffi.dart"
)

func RequiredFiles() *checks.FilesPhase {
	return checks.NewFilesPhase(checks.FilesSpec{
		ID:          PhaseRequiredFiles,
		Title:       "Checking required files",
		Description: "Verifies that the TurboJPEG runtime, headers, import library, wrapper source and build scripts are present.",
		Order:       1,
		Items: []checks.Item{
			{Description: "TurboJPEG DLL", Path: "turbojpeg.dll"},
			{Description: "TurboJPEG header", Path: "turbojpeg.h"},
			{Description: "TurboJPEG library", Path: "lib/turbojpeg.lib"},
			{Description: "JPEG wrapper source", Path: "jpeg_decoder_wrapper.c"},
			{Description: "CMake configuration", Path: CMakeListsPath},
			{Description: "Build script", Path: "build_wrapper.bat"},
			{Description: "Dependency checker", Path: "check_dependencies.ps1"},
		},
	})
}

func CMakeContent() *checks.ContentPhase {
	return checks.NewContentPhase(checks.ContentSpec{
		ID:          PhaseCMakeContent,
		Title:       "Checking CMakeLists.txt content",
		Description: "Verifies that CMakeLists.txt builds, links and installs the JPEG decoder wrapper alongside turbojpeg.dll.",
		Order:       2,
		Target:      CMakeListsPath,
		Subject:     "CMakeLists.txt",
		NotFound:    "CMakeLists.txt not found",
		Items: []checks.Item{
			{Description: "JPEG wrapper target", Pattern: "add_library(jpeg_decoder_wrapper SHARED"},
			{Description: "TurboJPEG linking", Pattern: "target_link_libraries(jpeg_decoder_wrapper"},
			{Description: "DLL installation", Pattern: "install(TARGETS jpeg_decoder_wrapper"},
			{Description: "TurboJPEG DLL installation", Pattern: "turbojpeg.dll"},
		},
	})
}

func DartFFIContent() *checks.ContentPhase {
	return checks.NewContentPhase(checks.ContentSpec{
		ID:          PhaseDartFFIContent,
		Title:       "Checking Dart FFI enhancements",
		Description: "Verifies that the Dart FFI binding loads the native library robustly and exposes the TurboJPEG test hooks.",
		Order:       3,
		Target:      DartBindingPath,
		Subject:     "Dart file",
		NotFound:    "Dart FFI file not found: " + DartBindingPath,
		Items: []checks.Item{
			{Description: "Robust DLL loading", Pattern: "_loadLibrary()"},
			{Description: "TurboJPEG test function", Pattern: "test_turbojpeg"},
			{Description: "Path package import", Pattern: "package:path/path.dart"},
			{Description: "Integration test function", Pattern: "testTurboJpegIntegration"},
		},
	})
}

func init() {
	checks.Register(RequiredFiles())
	checks.Register(CMakeContent())
	checks.Register(DartFFIContent())
}
