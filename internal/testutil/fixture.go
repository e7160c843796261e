// Package testutil builds on-disk TurboJPEG project layouts for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const CMakeLists = `cmake_minimum_required(VERSION 3.14)
project(runner LANGUAGES CXX C)

add_library(jpeg_decoder_wrapper SHARED jpeg_decoder_wrapper.c)
target_include_directories(jpeg_decoder_wrapper PRIVATE ${CMAKE_CURRENT_SOURCE_DIR})
target_link_libraries(jpeg_decoder_wrapper PRIVATE ${CMAKE_CURRENT_SOURCE_DIR}/lib/turbojpeg.lib)

install(TARGETS jpeg_decoder_wrapper RUNTIME DESTINATION "${INSTALL_BUNDLE_LIB_DIR}")
install(FILES "${CMAKE_CURRENT_SOURCE_DIR}/turbojpeg.dll" DESTINATION "${INSTALL_BUNDLE_LIB_DIR}")
`

const DartBinding = `import 'dart:ffi';
import 'dart:io';
import 'package:path/path.dart' as p;

DynamicLibrary _loadLibrary() {
  final exeDir = p.dirname(Platform.resolvedExecutable);
  return DynamicLibrary.open(p.join(exeDir, 'jpeg_decoder_wrapper.dll'));
}

final int Function() testTurbojpeg = _loadLibrary()
    .lookupFunction<Int32 Function(), int Function()>('test_turbojpeg');

bool testTurboJpegIntegration() => testTurbojpeg() == 1;
`

// RequiredFiles are the paths the files phase expects, relative to the base directory.
var RequiredFiles = []string{
	"turbojpeg.dll",
	"turbojpeg.h",
	"lib/turbojpeg.lib",
	"jpeg_decoder_wrapper.c",
	"CMakeLists.txt",
	"build_wrapper.bat",
	"check_dependencies.ps1",
}

// Project lays out <root>/windows (the base directory) and
// <root>/lib/services/decode_jpeg_ffi.dart, with every check satisfied.
// It returns the base directory.
func Project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	base := filepath.Join(root, "windows")

	for _, rel := range RequiredFiles {
		content := "stub\n"
		if rel == "CMakeLists.txt" {
			content = CMakeLists
		}
		WriteFile(t, base, rel, content)
	}
	WriteFile(t, base, "../lib/services/decode_jpeg_ffi.dart", DartBinding)
	return base
}

func WriteFile(t *testing.T, base, rel, content string) {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func Remove(t *testing.T, base, rel string) {
	t.Helper()
	if err := os.RemoveAll(filepath.Join(base, filepath.FromSlash(rel))); err != nil {
		t.Fatalf("RemoveAll(%s): %v", rel, err)
	}
}

// RemovePattern rewrites base/rel without any occurrence of pattern.
func RemovePattern(t *testing.T, base, rel, pattern string) {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	WriteFile(t, base, rel, strings.ReplaceAll(string(b), pattern, ""))
}
