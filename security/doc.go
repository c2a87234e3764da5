// Package security keeps user-supplied path names inside a base directory.
//
// # Path Validation
//
// ResolveWithin rejects names that:
//   - are empty or blank (ErrInvalidPath)
//   - are absolute, carry a volume name, or climb out with ".." (ErrPathTraversal)
//   - already exist and resolve through a symbolic link to a target outside
//     the base (ErrPathTraversal)
//
// Names that do not exist yet are checked lexically only.
//
// # Example Usage
//
//	path, err := security.ResolveWithin(projectDir, "target/classes")
//	if errors.Is(err, security.ErrPathTraversal) {
//	    return fmt.Errorf("refusing to touch %s", name)
//	}
package security
