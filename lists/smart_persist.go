package lists

import (
	"smartlist/persist"
)

// SaveTo stores the logging flag and the elements in the file name+c.Extension().
// A nil codec means persist.JSON.
func (sl *SmartList[T]) SaveTo(name string, c persist.Codec) error {
	fn := persist.FileName(name, c)
	sl.log.Printf("Saving to file %s\n", fn)

	snap := persist.Snapshot[T]{Log: sl.Logging(), Data: sl.ToSlice()}
	content, err := persist.Encode(snap, c)
	if err != nil {
		sl.log.Printf("Saving failed. %v\n", err)
		return err
	}
	sl.log.Printf("File content:\n%s\n", content)

	if _, err := persist.WriteFile(name, content, c); err != nil {
		sl.log.Printf("Saving failed. Failed to open file %s: %v\n", fn, err)
		return err
	}
	return nil
}

// LoadFrom replaces the list with the snapshot stored under name and restores its logging
// flag. The list is cleared first and stays empty when the file cannot be read.
// A nil codec means persist.JSON.
func (sl *SmartList[T]) LoadFrom(name string, c persist.Codec) error {
	fn := persist.FileName(name, c)
	sl.log.Printf("Loading from file %s\n", fn)
	sl.Clear()

	snap, err := persist.Load[T](name, c)
	if err != nil {
		sl.log.Printf("Loading failed. Failed to open file %s: %v\n", fn, err)
		return err
	}

	sl.SetLogging(snap.Log)
	if len(snap.Data) == 0 {
		sl.log.Printf("Loaded list is empty\n")
		return nil
	}
	for _, v := range snap.Data {
		sl.push(v)
	}
	sl.log.Printf("Loaded list with %d elements\n", len(snap.Data))
	return nil
}
