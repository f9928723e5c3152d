package transform

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

// ApplyImage transforms src into dst row by row on up to Config.Workers
// goroutines. The transform must use LayoutRGBA. Colors are un-premultiplied
// before lookup and premultiplied again afterwards; alpha is copied.
//
// Cancelling ctx stops scheduling new rows and returns the context's error;
// rows already written stay written. dst may be src.
func (t *Transform) ApplyImage(ctx context.Context, dst, src *image.RGBA64) error {
	if t.cfg.Layout != LayoutRGBA {
		return fmt.Errorf("%w: images need %v, transform uses %v", ErrLayout, LayoutRGBA, t.cfg.Layout)
	}
	sb, db := src.Bounds(), dst.Bounds()
	if sb.Size() != db.Size() {
		return fmt.Errorf("%w: source %v, destination %v", ErrBufferSize, sb.Size(), db.Size())
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(t.cfg.Workers)

	w := sb.Dx()
	for y := range sb.Dy() {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf := rows.get(4 * w)
			defer rows.put(buf)

			row := *buf
			readRow(row, src.Pix[src.PixOffset(sb.Min.X, sb.Min.Y+y):])
			apply16(t, row, row, 16)
			writeRow(dst.Pix[dst.PixOffset(db.Min.X, db.Min.Y+y):], row)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// readRow decodes big-endian RGBA64 samples and removes premultiplication.
func readRow(row []uint16, pix []byte) {
	for i := 0; i < len(row); i += 4 {
		p := pix[2*i:]
		r, g, b, a := binary.BigEndian.Uint16(p), binary.BigEndian.Uint16(p[2:]),
			binary.BigEndian.Uint16(p[4:]), binary.BigEndian.Uint16(p[6:])
		if a != 0 && a != 0xffff {
			r, g, b = unpremul(r, a), unpremul(g, a), unpremul(b, a)
		}
		row[i], row[i+1], row[i+2], row[i+3] = r, g, b, a
	}
}

// writeRow premultiplies and encodes a transformed row.
func writeRow(pix []byte, row []uint16) {
	for i := 0; i < len(row); i += 4 {
		r, g, b, a := row[i], row[i+1], row[i+2], row[i+3]
		if a != 0xffff {
			r, g, b = premul(r, a), premul(g, a), premul(b, a)
		}
		p := pix[2*i:]
		binary.BigEndian.PutUint16(p, r)
		binary.BigEndian.PutUint16(p[2:], g)
		binary.BigEndian.PutUint16(p[4:], b)
		binary.BigEndian.PutUint16(p[6:], a)
	}
}

func unpremul(c, a uint16) uint16 {
	return uint16(min((uint32(c)*0xffff+uint32(a)/2)/uint32(a), 0xffff))
}

func premul(c, a uint16) uint16 {
	return uint16((uint32(c)*uint32(a) + 0x7fff) / 0xffff)
}
