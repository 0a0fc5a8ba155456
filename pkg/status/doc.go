/*
Package status tracks per-file outcomes and progress for an organize run.

🎯 Purpose:
- Records what happened to every discovered file (moved/ignored/failed)
- Tracks processed/total progress counters
- Aggregates a run summary for user-facing output

📝 Design Philosophy:
The tracker is deliberately in-memory only. The organize pipeline keeps no
persisted index — the filesystem tree itself is the state — so this package
exists purely to give one run's caller an accurate account of what it did.
*/
package status
