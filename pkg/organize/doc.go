/*
Package organize implements the core pipeline for reorganizing files into a
creation-date bucketed tree.

	+-------------+
	|  Collector  |
	| (Traversal) |
	+------+------+
	       |
	+------+------+     +----------------+
	| Bucket Key  +-----+ Sequence Cache |
	| (Creation)  |     |   (Seeding)    |
	+------+------+     +--------+-------+
	       |                     |
	+------+---------------------+--+
	|            Mover              |
	|          (Rename)             |
	+-------------------------------+

🎯 Purpose:
- Recursively discovers every regular file under a source directory
- Buckets each file by creation month (YYYY/YYYY-MM, local time)
- Assigns a deterministic sequence number within each bucket
- Renames files into the target tree, one at a time

🔄 Flow:
1. Collect all files under source (fail fast on traversal errors)
2. Per file: creation time → bucket key → sequence number → destination
3. Rename the file into its bucket directory
4. Report each outcome via status tracking and user logging

⚡ Key Responsibilities:
- Strictly sequential processing (the sequence cache is single-owner)
- Seeding bucket counters from pre-existing on-disk file counts
- First error aborts the run; already-moved files stay moved

📝 Design Philosophy:
The pipeline never re-queries the filesystem for a bucket once its counter
is seeded, so correctness of the generated names depends entirely on an
accurate seed count. Everything that could break that assumption (parallel
runs, mid-run re-counting) is deliberately excluded; a flock on the target
directory keeps concurrent runs out.
*/
package organize
