// Package asm implements the assembler pipeline that turns one source file
// into its assembled outputs: macro expansion, the two address-resolution
// passes, and the object/entry/externals writers.
package asm

import (
	"github.com/pkg/errors"

	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
	"github.com/tenbit-asm/assembler/ioutil"
	"github.com/tenbit-asm/assembler/obj"
	"github.com/tenbit-asm/assembler/pass1"
	"github.com/tenbit-asm/assembler/pass2"
	"github.com/tenbit-asm/assembler/preprocessor"
)

// File extensions of the pipeline's inputs and outputs.
const (
	ExtSource    = ".as"
	ExtExpanded  = ".am"
	ExtObject    = ".ob"
	ExtEntries   = ".ent"
	ExtExternals = ".ext"
)

// Result is everything Build produced for one base name.
type Result struct {
	BaseName string
	Image    obj.Image
}

// Build runs the full pipeline for baseName: it reads baseName+".as",
// expands its macros into baseName+".am", runs both assembly passes, and,
// if the file assembled cleanly, writes the object, entry and externals
// files. keepAM controls whether the expanded source is left on disk
// afterward or removed once it is no longer needed.
//
// Build owns every file it creates for baseName: a failure at any stage
// leaves no partial output behind beyond an intentionally kept .am file.
func Build(baseName string, keepAM bool) (*Result, error) {
	lines, err := ioutil.ReadLines(baseName + ExtSource)
	if err != nil {
		return nil, errs.Newf(errs.Position{File: baseName}, errs.CannotOpenFile, "%v", err)
	}

	expanded, err := preprocessor.Expand(baseName, lines)
	if err != nil {
		return nil, err
	}

	amPath := baseName + ExtExpanded
	if err := ioutil.WriteText(amPath, expanded); err != nil {
		return nil, errors.Wrapf(err, "cannot write %s", amPath)
	}
	if !keepAM {
		defer ioutil.Remove(amPath)
	}

	p1 := pass1.Run(baseName, expanded)
	if p1.Errors.Len() > 0 {
		return nil, p1.Errors.Err()
	}

	image, p2Errors := pass2.Run(baseName, p1)
	if p2Errors.Len() > 0 {
		return nil, p2Errors.Err()
	}

	if err := writeOutputs(baseName, image); err != nil {
		return nil, err
	}

	return &Result{BaseName: baseName, Image: image}, nil
}

// writeOutputs writes the object, entry and externals files. Per spec.md
// §4.5 and §7, an I/O error on any one of the three invalidates all three:
// on failure, every path already written in this call is removed before
// the error is returned, so a partial triple is never left on disk.
func writeOutputs(baseName string, image obj.Image) (err error) {
	objPath := baseName + ExtObject
	entPath := baseName + ExtEntries
	extPath := baseName + ExtExternals

	defer func() {
		if err != nil {
			ioutil.Remove(objPath)
			ioutil.Remove(entPath)
			ioutil.Remove(extPath)
		}
	}()

	if err = obj.WriteObject(objPath, image, arch.Base); err != nil {
		return errors.Wrapf(err, "cannot write %s", objPath)
	}
	if err = obj.WriteEntries(entPath, image.Entries); err != nil {
		return errors.Wrapf(err, "cannot write %s", entPath)
	}
	if err = obj.WriteExternals(extPath, image.Externals); err != nil {
		return errors.Wrapf(err, "cannot write %s", extPath)
	}
	return nil
}
