// Package fuzztests houses Go fuzz harnesses that exercise the tokenizer on
// arbitrary inputs. Its goal is to smoke test robustness: no panics, token
// streams that always satisfy the structural invariants, and byte-exact
// reconstruction whenever the lexer reaches end of file.
//
// Назначение: загружать произвольные байты в FileSet и прогонять их через
// лексер, проверяя инварианты потока через testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag,
// internal/testkit.

package fuzztests
