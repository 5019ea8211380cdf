// Package instance holds the records soft-label workflows operate on.
//
// An Instance is a feature vector with a weight and a back-reference to the
// Dataset that gives its attributes meaning. A SoftInstance adds a
// probability distribution over the dataset's class values, for use by
// classifiers trained with soft labels such as EM.
//
// Attribute values and class distributions sit behind shared handles
// (*Values, *Distribution). Copying a record copies the handles, not the
// data: a mutation made through one holder is visible to every other holder
// of the same handle until one of them installs a new handle. Use Clone on
// the handle when an owned snapshot is needed.
//
// None of the types here synchronize internally. Callers updating records
// from several goroutines must partition the work per record or lock
// externally.
package instance
