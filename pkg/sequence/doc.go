/*
Package sequence generates lazy integer sequences and folds over them.

Sequences are returned as iter.Seq values. Each one is restartable: ranging
over the same value twice produces the same elements, and nothing is computed
until the caller pulls.

	seq, err := sequence.Divisible(102029, 3)
	if err != nil {
		return err
	}
	total := sequence.Sum(seq) // 1735144485
*/
package sequence
