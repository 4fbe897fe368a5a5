package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pmsBench/internal/pms"
)

// Текстовый формат набора экземпляров:
//
//	<всего экземпляров>
//
//	<n> <m> <класс> <номер>
//	<нагрузка_1> ... <нагрузка_n>
//
// Пустые строки между блоками не значимы.

const (
	// MaxJobsPerInstance — верхняя граница n в заголовке экземпляра при чтении.
	MaxJobsPerInstance = 1 << 20
	// предвыделение по заголовку файла не больше этого числа экземпляров.
	maxPrealloc = 1024
)

func WriteInstances(w io.Writer, instances []pms.Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n\n", len(instances))
	for i := range instances {
		inst := &instances[i]
		fmt.Fprintf(bw, "%s\n%s\n\n", inst.Key(), joinInts(inst.Loads))
	}
	return bw.Flush()
}

func WriteInstancesFile(path string, instances []pms.Instance) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteInstances(f, instances); err != nil {
		return errors.Wrapf(err, "write instances to %s", path)
	}
	return f.Close()
}

// ReadInstances разбирает текстовый формат. Экземпляры не валидируются:
// некорректные значения отсеивает Runner с указанием причины.
func ReadInstances(r io.Reader) ([]pms.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, errors.Errorf("unexpected end of input reading %s", what)
		}
		v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return 0, errors.Wrapf(err, "parse %s", what)
		}
		return v, nil
	}

	total, err := next("instance count")
	if err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, errors.Errorf("instance count must be >= 0 (got %d)", total)
	}

	out := make([]pms.Instance, 0, min(total, maxPrealloc))
	for i := 0; i < total; i++ {
		var key pms.Key
		for _, f := range []struct {
			dst  *int
			name string
		}{
			{&key.Jobs, "jobs"},
			{&key.Machines, "machines"},
			{&key.Class, "class"},
			{&key.ID, "instance id"},
		} {
			if *f.dst, err = next(fmt.Sprintf("instance %d %s", i+1, f.name)); err != nil {
				return nil, err
			}
		}
		if key.Jobs < 0 || key.Jobs > MaxJobsPerInstance {
			return nil, errors.Errorf("instance %d: jobs must be in [0, %d] (got %d)", i+1, MaxJobsPerInstance, key.Jobs)
		}

		loads := make([]int, key.Jobs)
		for j := range loads {
			if loads[j], err = next(fmt.Sprintf("instance %d load %d", i+1, j+1)); err != nil {
				return nil, err
			}
		}
		out = append(out, pms.Instance{
			Jobs:     key.Jobs,
			Machines: key.Machines,
			Class:    key.Class,
			ID:       key.ID,
			Loads:    loads,
		})
	}
	return out, nil
}

func ReadInstancesFile(path string) ([]pms.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := ReadInstances(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read instances from %s", path)
	}
	return out, nil
}
